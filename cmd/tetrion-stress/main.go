// Command tetrion-stress plays many headless games with the placement bot
// and prints a timing and outcome report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/tetrion/bot"
	"github.com/plus3/tetrion/config"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
)

// maxFrames caps a single game so a stalled run cannot hang the test.
const maxFrames = 60 * 60 * 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", 0, "Stop after this many games. Zero runs until the duration elapses.")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Games played concurrently.")
	seed := flag.Uint64("seed", 1, "Seed of the first game. Each following game adds one.")
	lineTarget := flag.Int("lines", 150, "Line target of each game.")
	noHold := flag.Bool("no-hold", false, "Keep the bot from using the hold slot.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("configure logging")
	}

	base := cfg.Game()
	base.LineTarget = *lineTarget

	report := &Report{
		Duration:       *duration,
		Workers:        *workers,
		LineTarget:     *lineTarget,
		UseHold:        !*noHold,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Int("workers", *workers).Msg("starting stress run")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(*workers, 1))

	startTime := time.Now()
	for i := 0; *games == 0 || i < *games; i++ {
		if ctx.Err() != nil {
			break
		}
		gameCfg := base
		gameCfg.Seed = *seed + uint64(i)
		group.Go(func() error {
			result := playGame(ctx, gameCfg, !*noHold)
			mu.Lock()
			report.Add(result)
			mu.Unlock()
			logger.Debug().
				Uint64("seed", result.Seed).
				Stringer("state", result.State).
				Int("lines", result.Stats.Lines).
				Int("score", result.Stats.Score).
				Int64("frames", result.Frames).
				Msg("game finished")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("stress run failed")
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Int("games", report.Games).Int("lines", report.TotalLines).Msg("stress run finished")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("generate report")
	}
	fmt.Println("--- End of Report ---")
}

// GameResult is the outcome of one headless game.
type GameResult struct {
	Seed     uint64
	State    game.State
	Stats    game.Stats
	Frames   int64
	Placed   int
	Holds    int
	Spins    int
	Combos   int
	Elapsed  time.Duration
	Schedule *loop.SchedulerStats
}

func playGame(ctx context.Context, cfg game.Config, useHold bool) GameResult {
	c := game.NewController(cfg)
	result := GameResult{Seed: c.Seed()}
	c.Subscribe(game.EventSpin, func(game.Event) { result.Spins++ })
	c.Subscribe(game.EventCombo, func(game.Event) { result.Combos++ })

	player := bot.NewPlayer(bot.DefaultWeights())
	player.UseHold = useHold
	scheduler := loop.NewScheduler(c)
	scheduler.Register(player)

	start := time.Now()
	c.Start()
	for result.Frames < maxFrames && !c.State().Terminal() {
		if result.Frames%600 == 0 && ctx.Err() != nil {
			break
		}
		scheduler.Once(game.Frame)
		result.Frames++
	}

	result.Elapsed = time.Since(start)
	result.State = c.State()
	result.Stats = c.Stats()
	result.Placed = player.Placed
	result.Holds = player.Holds
	result.Schedule = scheduler.GetStats()
	return result
}
