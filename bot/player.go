package bot

import (
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
	"github.com/plus3/tetrion/piece"
)

// stallLimit is how many frames the player waits for a queued move to take
// effect before giving up and dropping the piece where it is.
const stallLimit = 3

// Player is a loop.System that steers the falling piece toward the best
// placement found by Search. It issues at most one action per frame.
type Player struct {
	Weights Weights
	// UseHold lets the player swap in the held or next piece when that
	// piece scores better.
	UseHold bool

	plan    Placement
	planned bool
	last    game.ActivePiece
	stalled int

	Placed int
	Holds  int
}

// NewPlayer creates a player that scores placements with w.
func NewPlayer(w Weights) *Player {
	return &Player{Weights: w, UseHold: true}
}

// Plan returns the placement the player is steering toward, if any.
func (p *Player) Plan() (Placement, bool) {
	return p.plan, p.planned
}

func (p *Player) Execute(frame *loop.Frame) {
	c := frame.Controller
	if c.State() != game.Playing {
		p.planned = false
		return
	}
	active, ok := c.Active()
	if !ok {
		p.planned = false
		return
	}

	switch {
	case !p.planned || active.Type != p.plan.Type || active.Position.Y < p.last.Position.Y:
		if p.choose(frame, active) {
			return
		}
		p.stalled = 0
	case active.Rotation == p.last.Rotation && active.Position.X == p.last.Position.X:
		p.stalled++
	default:
		p.stalled = 0
	}
	p.last = active

	switch {
	case p.stalled >= stallLimit:
		p.drop(frame)
	case active.Rotation != p.plan.Rotation:
		frame.Commands.Tap(turnToward(active.Rotation, p.plan.Rotation))
	case active.Position.X < p.plan.Position.X:
		frame.Commands.Tap(game.MoveRight)
	case active.Position.X > p.plan.Position.X:
		frame.Commands.Tap(game.MoveLeft)
	default:
		p.drop(frame)
	}
}

// choose plans a placement for the active piece. It reports true when it
// queued a hold instead, leaving planning to the next frame.
func (p *Player) choose(frame *loop.Frame, active game.ActivePiece) bool {
	c := frame.Controller
	b := c.Board()

	best, ok := Search(b, active.Type, active.Position.Y, p.Weights)

	if p.UseHold && c.CanHold() {
		alt, hasAlt := c.Held()
		if !hasAlt {
			if next := c.Preview(1); len(next) > 0 {
				alt, hasAlt = next[0], true
			}
		}
		if hasAlt && alt != active.Type {
			swap, swapOK := Search(b, alt, piece.Spawn(alt).Y, p.Weights)
			if swapOK && (!ok || swap.Score > best.Score) {
				frame.Commands.Tap(game.Hold)
				p.planned = false
				p.Holds++
				return true
			}
		}
	}

	p.plan = best
	p.planned = ok
	if !ok {
		p.drop(frame)
		return true
	}
	return false
}

// turnToward picks the rotation input that brings from closer to to. A half
// turn goes clockwise.
func turnToward(from, to piece.Rotation) game.Action {
	if from.CCW() == to {
		return game.RotateCCW
	}
	return game.RotateCW
}

func (p *Player) drop(frame *loop.Frame) {
	frame.Commands.Tap(game.HardDrop)
	p.planned = false
	p.Placed++
}
