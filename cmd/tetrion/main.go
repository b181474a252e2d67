// Command tetrion is a playable falling-block game window. Settings come
// from TETRION_* environment variables and an optional .env file; flags
// override the most common ones.
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/tetrion/bot"
	"github.com/plus3/tetrion/config"
	"github.com/plus3/tetrion/debugui"
	debugui_ebiten "github.com/plus3/tetrion/debugui/ebiten"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720
)

func main() {
	envFile := flag.String("env", "", "Dotenv file to load instead of .env.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. Zero uses TETRION_SEED or the clock.")
	autoplay := flag.Bool("bot", false, "Let the placement bot play.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("load config")
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("configure logging")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	controller := game.NewController(cfg.Game())
	logEvents(logger, controller)
	logger.Info().Uint64("seed", controller.Seed()).Bool("bot", *autoplay).Msg("starting tetrion")

	scheduler := loop.NewScheduler(controller)
	g := &Game{
		logger:     logger,
		controller: controller,
		scheduler:  scheduler,
	}

	if *debug {
		g.backend = debugui_ebiten.NewImguiBackend("Tetrion", ScreenWidth, ScreenHeight)
		g.overlay = debugui.NewOverlay(
			debugui.GameStats{},
			debugui.NewBoardStats(240),
			debugui.NewEventLog(controller, 128),
			debugui.NewPerformanceStats(scheduler, 240),
		)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Tetrion")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scheduler.Register(&KeyboardSystem{Bindings: DefaultBindings(), overlay: g.overlay})
	if *autoplay {
		g.player = bot.NewPlayer(bot.DefaultWeights())
		scheduler.Register(g.player)
		controller.Start()
	}
	if g.overlay != nil {
		scheduler.Register(g.overlay)
	}

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
	stats := controller.Stats()
	logger.Info().Int("score", stats.Score).Int("lines", stats.Lines).Int("level", stats.Level).Msg("bye")
}

func logEvents(logger zerolog.Logger, c *game.Controller) {
	c.SubscribeAll(func(ev game.Event) {
		entry := logger.Debug()
		switch ev.Kind {
		case game.EventLineClear:
			entry = logger.Info().Ints("rows", ev.Rows)
		case game.EventLevelUp:
			entry = logger.Info().Int("level", ev.Level)
		case game.EventCombo:
			entry = entry.Int("combo", ev.Combo)
		case game.EventPieceLock, game.EventSpin:
			entry = entry.Stringer("piece", ev.Piece.Type).Int("x", ev.Piece.Position.X).Int("y", ev.Piece.Position.Y)
		case game.EventGameOver, game.EventCompleted:
			stats := c.Stats()
			entry = logger.Info().Int("score", stats.Score).Int("lines", stats.Lines)
		}
		entry.Stringer("event", ev.Kind).Msg("game event")
	})
}
