package game

import "github.com/plus3/tetrion/piece"

// Lock processing: write the piece, detect a spin, clear and score lines,
// advance the level, then either finish the game or spawn the next piece.
func (c *Controller) lock() {
	locked := *c.active
	locked.LockTimer = 0
	c.active = nil
	c.board.Lock(locked.Type, locked.Position, locked.Rotation)

	if locked.Type == piece.T && c.lastRotated && c.blockedCorners(locked.Position) >= 3 {
		c.events.emit(Event{Kind: EventSpin, Piece: locked})
	}
	c.events.emit(Event{Kind: EventPieceLock, Piece: locked})

	if rows := c.board.ClearLines(); len(rows) > 0 {
		c.scoreLines(rows)
	} else {
		c.stats.Combo = 0
	}

	if c.stats.Lines >= c.cfg.LineTarget {
		c.state = Completed
		c.events.emit(Event{Kind: EventCompleted})
		return
	}
	if c.spawn(c.bag.Next()) {
		c.canHold = true
	}
}

func (c *Controller) scoreLines(rows []int) {
	c.events.emit(Event{Kind: EventLineClear, Rows: rows})

	s := &c.stats
	s.Combo++
	if s.Combo > 1 {
		c.events.emit(Event{Kind: EventCombo, Combo: s.Combo})
	}

	n := len(rows)
	s.Score += clearScore(n, s.Level, s.Combo, s.BackToBack)
	s.BackToBack = n >= 4
	s.Lines += n

	level := min(max(c.cfg.StartLevel, s.Lines/10), MaxLevel)
	if level > s.Level {
		s.Level = level
		c.events.emit(Event{Kind: EventLevelUp, Level: level})
	}
}

// blockedCorners counts the corners of the 3x3 box at pos that are filled
// or outside the grid.
func (c *Controller) blockedCorners(pos piece.Point) int {
	n := 0
	for _, off := range [4]piece.Offset{{DX: 0, DY: 0}, {DX: 2, DY: 0}, {DX: 0, DY: 2}, {DX: 2, DY: 2}} {
		p := pos.Add(off)
		if p.Y < 0 || c.board.Occupied(p.X, p.Y) {
			n++
		}
	}
	return n
}
