// Package game implements the marathon controller: a frame-driven state
// machine owning the board and the piece sequence. Callers feed it elapsed
// time through Update and mapped input through HandleInput, and observe it
// through read-only queries and synchronously raised events.
package game

import (
	"time"

	"github.com/plus3/tetrion/bag"
	"github.com/plus3/tetrion/board"
	"github.com/plus3/tetrion/piece"
)

// ActivePiece is the falling piece.
type ActivePiece struct {
	Type       piece.Type
	Position   piece.Point
	Rotation   piece.Rotation
	SoftLocked bool
	LockTimer  time.Duration
}

type autoShift struct {
	dir   int
	timer time.Duration
}

// Controller runs one game. It is not safe for concurrent use; all methods
// are expected to be called from the frame loop.
type Controller struct {
	cfg   Config
	seed  uint64
	board *board.Board
	bag   *bag.Bag

	state  State
	stats  Stats
	active *ActivePiece

	held    piece.Type
	hasHeld bool
	canHold bool

	dropTimer    time.Duration
	das          autoShift
	softDropHeld bool
	lastRotated  bool

	events eventBus
}

// NewController creates an idle controller.
func NewController(cfg Config) *Controller {
	cfg = cfg.normalize()
	seed := cfg.Seed
	if seed == 0 {
		seed = bag.TimeSeed()
	}
	c := &Controller{
		cfg:    cfg,
		seed:   seed,
		board:  board.New(cfg.Width, cfg.Visible, cfg.Hidden),
		bag:    bag.New(seed),
		events: newEventBus(),
	}
	c.clear()
	return c
}

// Reset abandons the current game and returns to Idle with a fresh piece
// sequence drawn from seed. Subscriptions survive a reset.
func (c *Controller) Reset(seed uint64) {
	c.seed = seed
	c.clear()
	c.state = Idle
}

// Start begins a new game from the configured start level. The piece
// sequence restarts from the current seed, so starting twice with the same
// seed replays the same pieces. It reports false while a game is running or
// paused.
func (c *Controller) Start() bool {
	if c.state == Playing || c.state == Paused {
		return false
	}
	c.clear()
	c.state = Playing
	c.canHold = true
	c.spawn(c.bag.Next())
	return true
}

func (c *Controller) clear() {
	c.board.Reset()
	c.bag.Reset(c.seed)
	c.stats = Stats{Level: c.cfg.StartLevel}
	c.active = nil
	c.held, c.hasHeld, c.canHold = 0, false, false
	c.dropTimer = 0
	c.das = autoShift{}
	c.softDropHeld = false
	c.lastRotated = false
}

// spawn places a new piece of type t at its spawn position. A spawn that
// collides ends the game.
func (c *Controller) spawn(t piece.Type) bool {
	pos := piece.Spawn(t)
	if !c.board.IsValid(t, pos, piece.North) {
		c.active = nil
		c.state = GameOver
		c.events.emit(Event{Kind: EventGameOver})
		return false
	}
	c.active = &ActivePiece{Type: t, Position: pos, Rotation: piece.North}
	c.dropTimer = 0
	c.lastRotated = false
	return true
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Stats returns a snapshot of score, lines, level, combo and back-to-back.
func (c *Controller) Stats() Stats { return c.stats }

// Seed returns the seed of the current piece sequence.
func (c *Controller) Seed() uint64 { return c.seed }

// Config returns the normalized configuration.
func (c *Controller) Config() Config { return c.cfg }

// Board returns a copy of the playfield.
func (c *Controller) Board() *board.Board { return c.board.Clone() }

// BoardStats returns the surface statistics of the playfield.
func (c *Controller) BoardStats() board.Stats { return c.board.Stats() }

// Active returns the falling piece, or false if there is none.
func (c *Controller) Active() (ActivePiece, bool) {
	if c.active == nil {
		return ActivePiece{}, false
	}
	return *c.active, true
}

// Held returns the piece in the hold slot, or false if it is empty.
func (c *Controller) Held() (piece.Type, bool) {
	return c.held, c.hasHeld
}

// CanHold reports whether a hold is allowed before the next lock.
func (c *Controller) CanHold() bool {
	return c.state == Playing && c.canHold
}

// Preview returns the next n piece types without drawing them.
func (c *Controller) Preview(n int) []piece.Type {
	return c.bag.Preview(n)
}

// Upcoming returns the configured number of preview pieces.
func (c *Controller) Upcoming() []piece.Type {
	return c.bag.Preview(c.cfg.PreviewCount)
}

// Ghost returns the landing position of the falling piece, or false if
// there is none.
func (c *Controller) Ghost() (piece.Point, bool) {
	if c.active == nil {
		return piece.Point{}, false
	}
	return c.board.Ghost(c.active.Type, c.active.Position, c.active.Rotation), true
}

// DropInterval returns the current gravity interval, including the soft
// drop speed-up while it is held. It is never shorter than one Frame.
func (c *Controller) DropInterval() time.Duration {
	interval := DropInterval(c.stats.Level)
	if c.softDropHeld {
		interval /= time.Duration(c.cfg.SoftDropFactor)
	}
	return max(interval, Frame)
}
