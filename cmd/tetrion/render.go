package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetrion/bot"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/piece"
)

const (
	CellSize = 28
	OffsetX  = 40
	OffsetY  = 40
)

var pieceColors = [piece.Count]color.RGBA{
	piece.I: {102, 204, 255, 255},
	piece.O: {255, 214, 51, 255},
	piece.T: {178, 102, 255, 255},
	piece.S: {102, 221, 102, 255},
	piece.Z: {255, 102, 119, 255},
	piece.J: {77, 119, 255, 255},
	piece.L: {255, 153, 51, 255},
}

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridColor       = color.RGBA{45, 45, 58, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
)

func drawCell(screen *ebiten.Image, x, y int, c color.Color, outline bool) {
	sx := float32(OffsetX + x*CellSize)
	sy := float32(OffsetY + y*CellSize)
	vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, c, false)
	if outline {
		vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, backgroundColor, false)
	}
}

func drawPiece(screen *ebiten.Image, t piece.Type, pos piece.Point, r piece.Rotation, hidden int, c color.Color) {
	for _, off := range piece.Get(t, r).Cells() {
		p := pos.Add(off)
		if p.Y < hidden {
			continue
		}
		drawCell(screen, p.X, p.Y-hidden, c, true)
	}
}

// drawPlayfield renders the visible rows, the ghost and the falling piece.
// Hidden rows are not drawn.
func drawPlayfield(screen *ebiten.Image, c *game.Controller) {
	screen.Fill(backgroundColor)

	b := c.Board()
	hidden := b.Hidden()
	rows := b.Rows()

	vector.DrawFilledRect(screen, OffsetX, OffsetY, float32(b.Width()*CellSize), float32((b.Height()-hidden)*CellSize), wellColor, false)
	for y := hidden; y < b.Height(); y++ {
		for x, cell := range rows[y] {
			t, ok := cell.Type()
			if !ok {
				sx := float32(OffsetX + x*CellSize)
				sy := float32(OffsetY + (y-hidden)*CellSize)
				vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridColor, false)
				continue
			}
			drawCell(screen, x, y-hidden, pieceColors[t], true)
		}
	}

	if active, ok := c.Active(); ok {
		if ghost, ok := c.Ghost(); ok {
			drawPiece(screen, active.Type, ghost, active.Rotation, hidden, ghostColor)
		}
		drawPiece(screen, active.Type, active.Position, active.Rotation, hidden, pieceColors[active.Type])
	}
}

func drawSidebar(screen *ebiten.Image, c *game.Controller, player *bot.Player) {
	b := c.Board()
	x := OffsetX + b.Width()*CellSize + 30
	stats := c.Stats()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", stats.Score), x, OffsetY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", stats.Lines), x, OffsetY+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL  %d", stats.Level), x, OffsetY+40)
	if stats.Combo > 1 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COMBO  x%d", stats.Combo), x, OffsetY+60)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", x, OffsetY+100)
	for i, t := range c.Upcoming() {
		drawMini(screen, t, x, OffsetY+120+i*50)
	}

	ebitenutil.DebugPrintAt(screen, "HOLD", x+110, OffsetY+100)
	if held, ok := c.Held(); ok {
		drawMini(screen, held, x+110, OffsetY+120)
	}

	status := ""
	switch c.State() {
	case game.Idle:
		status = "Press ENTER to start"
	case game.Paused:
		status = "PAUSED"
	case game.GameOver:
		status = "GAME OVER - press R"
	case game.Completed:
		status = "COMPLETE - press R"
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, OffsetX+20, OffsetY+(b.Height()-b.Hidden())*CellSize/2)
	}

	if player != nil {
		if plan, ok := player.Plan(); ok {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BOT  %s@%d %s  %.2f", plan.Type, plan.Position.X, plan.Rotation, plan.Score), x, OffsetY+420)
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("seed %d", c.Seed()), x, OffsetY+440)
}

// drawMini draws a spawn orientation thumbnail with its top left at x, y.
func drawMini(screen *ebiten.Image, t piece.Type, x, y int) {
	const size = 10
	for _, off := range piece.Get(t, piece.North).Cells() {
		vector.DrawFilledRect(screen, float32(x+off.DX*size), float32(y+off.DY*size), size-1, size-1, pieceColors[t], false)
	}
}
