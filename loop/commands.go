package loop

import "github.com/plus3/tetrion/game"

// InputHandler receives flushed input. *game.Controller implements it.
type InputHandler interface {
	HandleInput(action game.Action, pressed bool) bool
}

// Commands buffers input queued by systems during a frame so every system
// sees the same controller state.
type Commands struct {
	inputs []inputCommand
	defers []func()
}

type inputCommand struct {
	action  game.Action
	pressed bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Press queues a press of action.
func (c *Commands) Press(action game.Action) {
	c.inputs = append(c.inputs, inputCommand{action: action, pressed: true})
}

// Release queues a release of action.
func (c *Commands) Release(action game.Action) {
	c.inputs = append(c.inputs, inputCommand{action: action, pressed: false})
}

// Tap queues a press immediately followed by a release.
func (c *Commands) Tap(action game.Action) {
	c.Press(action)
	c.Release(action)
}

// Defer queues fn to run after input has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued inputs.
func (c *Commands) Len() int {
	return len(c.inputs)
}

// Flush applies queued input to h in order, runs deferred functions and
// resets the buffer. It returns the number of accepted inputs.
func (c *Commands) Flush(h InputHandler) int {
	accepted := 0
	for _, in := range c.inputs {
		if h.HandleInput(in.action, in.pressed) {
			accepted++
		}
	}
	for _, fn := range c.defers {
		fn()
	}
	c.inputs = c.inputs[:0]
	c.defers = c.defers[:0]
	return accepted
}
