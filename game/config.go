package game

import (
	"time"

	"github.com/plus3/tetrion/board"
)

// Config tunes the timing and rules of a Controller.
type Config struct {
	// Seed fixes the piece sequence. Zero picks a time-derived seed.
	Seed uint64
	// StartLevel is the level a new game begins at, 0 through MaxLevel.
	StartLevel int

	// DAS is how long a direction must be held before it auto-repeats.
	DAS time.Duration
	// ARR is the auto-repeat period once DAS has elapsed. Zero shifts the
	// piece to the wall in a single frame.
	ARR time.Duration
	// LockDelay is the grace period a grounded piece gets before locking.
	LockDelay time.Duration
	// SoftDropFactor divides the gravity interval while soft drop is held.
	SoftDropFactor int

	// LineTarget is the total line count that completes the game.
	LineTarget int
	// PreviewCount is the number of upcoming pieces reported by Upcoming.
	PreviewCount int

	Width   int
	Visible int
	Hidden  int
}

// DefaultConfig returns the standard marathon tuning on a 10x20 field with
// two hidden rows.
func DefaultConfig() Config {
	return Config{
		DAS:            167 * time.Millisecond,
		ARR:            33 * time.Millisecond,
		LockDelay:      500 * time.Millisecond,
		SoftDropFactor: 20,
		LineTarget:     999,
		PreviewCount:   5,
		Width:          board.DefaultWidth,
		Visible:        board.DefaultVisible,
		Hidden:         board.DefaultHidden,
	}
}

// normalize fills in fields whose zero value cannot be meant literally.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Width <= 0 || c.Visible <= 0 {
		c.Width, c.Visible, c.Hidden = def.Width, def.Visible, def.Hidden
	}
	if c.Hidden < 0 {
		c.Hidden = def.Hidden
	}
	if c.LineTarget <= 0 {
		c.LineTarget = def.LineTarget
	}
	if c.SoftDropFactor < 1 {
		c.SoftDropFactor = 1
	}
	if c.PreviewCount < 0 {
		c.PreviewCount = 0
	}
	if c.ARR < 0 {
		c.ARR = 0
	}
	c.StartLevel = min(max(c.StartLevel, 0), MaxLevel)
	return c
}
