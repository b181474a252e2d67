package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/plus3/tetrion/bot"
	"github.com/plus3/tetrion/debugui"
	debugui_ebiten "github.com/plus3/tetrion/debugui/ebiten"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
)

// Game implements ebiten.Game around a controller and its scheduler.
type Game struct {
	logger     zerolog.Logger
	controller *game.Controller
	scheduler  *loop.Scheduler
	player     *bot.Player

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleMeta()

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.backend != nil {
		g.backend.Frame(func() { g.scheduler.Once(dt) })
		return nil
	}
	g.scheduler.Once(dt)
	return nil
}

// handleMeta covers keys that act on the session rather than the piece.
func (g *Game) handleMeta() {
	c := g.controller
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if c.Start() {
			g.logger.Info().Uint64("seed", c.Seed()).Msg("game started")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		c.Reset(c.Seed())
		c.Start()
		g.logger.Info().Uint64("seed", c.Seed()).Msg("game restarted")
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		if g.overlay != nil {
			g.overlay.Hidden = !g.overlay.Hidden
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawPlayfield(screen, g.controller)
	drawSidebar(screen, g.controller, g.player)
	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
