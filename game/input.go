package game

import "github.com/plus3/tetrion/piece"

// HandleInput applies a press or release of action. It reports whether the
// action changed anything; rejected actions are silent no-ops. Outside
// Playing only Pause is honoured, and only from Playing or Paused.
func (c *Controller) HandleInput(action Action, pressed bool) bool {
	if action == Pause {
		return pressed && c.togglePause()
	}
	if c.state != Playing || c.active == nil {
		return false
	}

	switch action {
	case MoveLeft, MoveRight:
		dir := -1
		if action == MoveRight {
			dir = 1
		}
		if !pressed {
			if c.das.dir != dir {
				return false
			}
			c.das = autoShift{}
			return true
		}
		c.das = autoShift{dir: dir}
		return c.shift(dir)
	case SoftDrop:
		c.softDropHeld = pressed
		if !pressed {
			return true
		}
		if !c.descend() {
			return false
		}
		c.stats.Score += SoftDropPoints
		return true
	}

	if !pressed {
		return false
	}
	switch action {
	case HardDrop:
		c.hardDrop()
		return true
	case RotateCW:
		return c.rotate(c.active.Rotation.CW())
	case RotateCCW:
		return c.rotate(c.active.Rotation.CCW())
	case Hold:
		return c.hold()
	}
	return false
}

func (c *Controller) togglePause() bool {
	switch c.state {
	case Playing:
		c.state = Paused
		c.das = autoShift{}
		c.softDropHeld = false
		return true
	case Paused:
		c.state = Playing
		return true
	}
	return false
}

// shift moves the falling piece one column.
func (c *Controller) shift(dir int) bool {
	a := c.active
	pos := a.Position.Add(piece.Offset{DX: dir})
	if !c.board.IsValid(a.Type, pos, a.Rotation) {
		return false
	}
	a.Position = pos
	c.lastRotated = false
	c.maneuvered()
	return true
}

// descend moves the falling piece one row down. A successful descent ends
// any soft lock.
func (c *Controller) descend() bool {
	a := c.active
	pos := a.Position.Add(piece.Offset{DY: 1})
	if !c.board.IsValid(a.Type, pos, a.Rotation) {
		return false
	}
	a.Position = pos
	a.SoftLocked = false
	a.LockTimer = 0
	c.lastRotated = false
	return true
}

func (c *Controller) grounded() bool {
	a := c.active
	return !c.board.IsValid(a.Type, a.Position.Add(piece.Offset{DY: 1}), a.Rotation)
}

// maneuvered restarts the lock delay after a successful shift or rotation
// of a soft-locked piece, and lifts the soft lock if the piece was moved off
// its support.
func (c *Controller) maneuvered() {
	a := c.active
	if !a.SoftLocked {
		return
	}
	a.LockTimer = 0
	if !c.grounded() {
		a.SoftLocked = false
	}
}

func (c *Controller) hardDrop() {
	rows := 0
	for c.descend() {
		rows++
	}
	c.stats.Score += HardDropPoints * rows
	c.lock()
}

func (c *Controller) rotate(to piece.Rotation) bool {
	a := c.active
	pos, ok := kick(a.Type, a.Position, a.Rotation, to, func(p piece.Point) bool {
		return c.board.IsValid(a.Type, p, to)
	})
	if !ok {
		return false
	}
	a.Position = pos
	a.Rotation = to
	c.lastRotated = true
	c.maneuvered()
	return true
}

// kick resolves a rotation from one state to another: the in-place rotation
// first, then each wall kick offset in table order. The first position that
// fits wins.
func kick(t piece.Type, pos piece.Point, from, to piece.Rotation, fits func(piece.Point) bool) (piece.Point, bool) {
	if fits(pos) {
		return pos, true
	}
	for _, off := range piece.WallKicks(t, from, to) {
		if p := pos.Add(off); fits(p) {
			return p, true
		}
	}
	return pos, false
}

func (c *Controller) hold() bool {
	if !c.canHold {
		return false
	}
	current := c.active.Type
	next, swap := c.held, c.hasHeld
	c.held, c.hasHeld = current, true
	c.canHold = false
	if !swap {
		next = c.bag.Next()
	}
	c.spawn(next)
	return true
}
