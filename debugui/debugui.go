// Package debugui renders Dear ImGui debug windows for a running game: the
// controller's stats, the stack surface, a log of recent events and the
// scheduler's per-system timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrion/loop"
)

// Panel draws one ImGui window from the current frame.
type Panel interface {
	Render(frame *loop.Frame)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Game input should be ignored while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a loop.System that updates the input state and defers each
// panel's render until the frame's input has been applied.
type Overlay struct {
	Panels []Panel
	Input  InputState
	Hidden bool
}

// NewOverlay creates an overlay with the given panels.
func NewOverlay(panels ...Panel) *Overlay {
	return &Overlay{Panels: panels}
}

// Execute updates input state and queues every panel for rendering.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if o.Hidden {
		return
	}
	for _, panel := range o.Panels {
		frame.Commands.Defer(func() { panel.Render(frame) })
	}
}
