package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrion/loop"
)

// GameStats shows the score table, the hold slot and the preview queue.
type GameStats struct{}

func (GameStats) Render(frame *loop.Frame) {
	c := frame.Controller

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 230), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := c.Stats()
	imgui.Text(fmt.Sprintf("State: %s", c.State()))
	imgui.Text(fmt.Sprintf("Seed: %d", c.Seed()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", stats.Score))
	imgui.Text(fmt.Sprintf("Lines: %d / %d", stats.Lines, c.Config().LineTarget))
	imgui.Text(fmt.Sprintf("Level: %d", stats.Level))
	imgui.Text(fmt.Sprintf("Combo: %d", stats.Combo))
	imgui.Text(fmt.Sprintf("Back-to-back: %t", stats.BackToBack))
	imgui.ProgressBarV(float32(stats.Lines)/float32(c.Config().LineTarget), imgui.NewVec2(-1, 0), "")
	imgui.Separator()

	if held, ok := c.Held(); ok {
		imgui.Text(fmt.Sprintf("Hold: %s (available: %t)", held, c.CanHold()))
	} else {
		imgui.Text("Hold: -")
	}

	var queue strings.Builder
	for _, t := range c.Upcoming() {
		queue.WriteString(t.String())
	}
	imgui.Text(fmt.Sprintf("Next: %s", queue.String()))

	if active, ok := c.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s at (%d,%d) %s", active.Type, active.Position.X, active.Position.Y, active.Rotation))
		if active.SoftLocked {
			imgui.Text(fmt.Sprintf("Lock: %v / %v", active.LockTimer, c.Config().LockDelay))
		}
	}

	imgui.End()
}
