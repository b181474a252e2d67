package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetrion/debugui"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
)

// Binding maps a key to a controller action.
type Binding struct {
	Key    ebiten.Key
	Action game.Action
}

// DefaultBindings returns the guideline keyboard layout.
func DefaultBindings() []Binding {
	return []Binding{
		{ebiten.KeyArrowLeft, game.MoveLeft},
		{ebiten.KeyArrowRight, game.MoveRight},
		{ebiten.KeyArrowDown, game.SoftDrop},
		{ebiten.KeySpace, game.HardDrop},
		{ebiten.KeyArrowUp, game.RotateCW},
		{ebiten.KeyX, game.RotateCW},
		{ebiten.KeyZ, game.RotateCCW},
		{ebiten.KeyControlLeft, game.RotateCCW},
		{ebiten.KeyC, game.Hold},
		{ebiten.KeyShiftLeft, game.Hold},
		{ebiten.KeyP, game.Pause},
		{ebiten.KeyEscape, game.Pause},
	}
}

// KeyboardSystem queues key edges as controller input.
type KeyboardSystem struct {
	Bindings []Binding
	overlay  *debugui.Overlay
}

func (s *KeyboardSystem) Execute(frame *loop.Frame) {
	if s.overlay != nil && s.overlay.Input.WantCaptureKeyboard {
		return
	}
	for _, b := range s.Bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			frame.Commands.Press(b.Action)
		}
		if inpututil.IsKeyJustReleased(b.Key) {
			frame.Commands.Release(b.Action)
		}
	}
}
