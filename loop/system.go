// Package loop drives a game controller frame by frame. Systems registered
// with a Scheduler run in order once per frame and queue input through the
// frame's Commands, which are applied to the controller after every system
// has run and before the controller advances.
package loop

import (
	"time"

	"github.com/plus3/tetrion/game"
)

// System is a behavior that runs once per frame. Systems read the controller
// snapshot from the frame and queue input through frame.Commands.
type System interface {
	Execute(frame *Frame)
}

// Frame is the per-tick context handed to every system.
type Frame struct {
	Index      int64
	DeltaTime  time.Duration
	Commands   *Commands
	Controller *game.Controller
}
