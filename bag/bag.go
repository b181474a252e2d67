// Package bag implements the 7-bag randomizer: every run of seven draws
// aligned to a refill contains each piece type exactly once. Shuffles are
// driven by a seeded linear congruential generator so a seed fully determines
// the infinite sequence.
package bag

import (
	"time"

	"github.com/plus3/tetrion/piece"
)

// Bag produces piece types from two shuffled permutation buffers.
type Bag struct {
	seed    uint64
	rng     lcg
	current []piece.Type
	next    []piece.Type
}

// New creates a bag seeded with seed.
func New(seed uint64) *Bag {
	b := &Bag{}
	b.Reset(seed)
	return b
}

// TimeSeed derives a seed from the wall clock for sessions that do not need
// to be reproduced.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Reset discards both buffers and reinitializes them from seed.
func (b *Bag) Reset(seed uint64) {
	b.seed = seed
	b.rng = newLCG(seed)
	b.current = b.rng.permutation()
	b.next = b.rng.permutation()
}

// Seed returns the seed the bag was last reset with.
func (b *Bag) Seed() uint64 {
	return b.seed
}

// Next removes and returns the next piece type.
func (b *Bag) Next() piece.Type {
	if len(b.current) == 0 {
		b.current = b.next
		b.next = b.rng.permutation()
	}
	t := b.current[0]
	b.current = b.current[1:]
	return t
}

// Preview returns the next n piece types without consuming them. Buffers
// beyond the two held ones are generated from a copy of the generator, so
// the draws that follow are unaffected.
func (b *Bag) Preview(n int) []piece.Type {
	if n <= 0 {
		return nil
	}

	out := make([]piece.Type, 0, n)
	out = append(out, b.current...)
	out = append(out, b.next...)

	rng := b.rng
	for len(out) < n {
		out = append(out, rng.permutation()...)
	}
	return out[:n:n]
}
