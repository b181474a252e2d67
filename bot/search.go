// Package bot plays the game on its own. It searches every rotation and
// column a piece can be dropped into, scores the resulting board with a
// weighted sum of surface features and steers the controller toward the
// best placement one input per frame.
package bot

import (
	"github.com/plus3/tetrion/board"
	"github.com/plus3/tetrion/piece"
)

// Weights scale the board features of a candidate placement. Positive
// weights reward a feature and negative weights penalize it.
type Weights struct {
	AggregateHeight float64
	Lines           float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights favour flat, low stacks without holes.
func DefaultWeights() Weights {
	return Weights{
		AggregateHeight: -0.510066,
		Lines:           0.760666,
		Holes:           -0.35663,
		Bumpiness:       -0.184483,
	}
}

// Placement is a final resting spot for a piece together with its score.
type Placement struct {
	Type     piece.Type
	Rotation piece.Rotation
	Position piece.Point
	Lines    int
	Score    float64
}

// Evaluate scores b after count lines were cleared.
func (w Weights) Evaluate(b *board.Board, lines int) float64 {
	stats := b.Stats()
	aggregate := 0
	for _, h := range stats.Columns {
		aggregate += h
	}
	return w.AggregateHeight*float64(aggregate) +
		w.Lines*float64(lines) +
		w.Holes*float64(stats.Holes) +
		w.Bumpiness*float64(stats.Bumpiness)
}

// Search drops t straight down from row y in every rotation and column and
// returns the highest scoring placement. It reports false when the piece
// fits nowhere. Ties keep the first candidate in rotation then column order.
func Search(b *board.Board, t piece.Type, y int, w Weights) (Placement, bool) {
	var (
		best  Placement
		found bool
	)

	rotations := []piece.Rotation{piece.North, piece.East, piece.South, piece.West}
	if t == piece.O {
		rotations = rotations[:1]
	}

	scratch := b.Clone()
	for _, r := range rotations {
		size := piece.Get(t, r).Size()
		for x := -size + 1; x < b.Width(); x++ {
			start := piece.Point{X: x, Y: y}
			if !b.IsValid(t, start, r) {
				continue
			}
			land := b.Ghost(t, start, r)

			scratch.CopyFrom(b)
			scratch.Lock(t, land, r)
			lines := len(scratch.ClearLines())
			score := w.Evaluate(scratch, lines)

			if !found || score > best.Score {
				best = Placement{Type: t, Rotation: r, Position: land, Lines: lines, Score: score}
				found = true
			}
		}
	}
	return best, found
}
