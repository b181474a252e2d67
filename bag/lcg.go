package bag

import "github.com/plus3/tetrion/piece"

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 1<<31 - 1
)

// lcg is a 31-bit linear congruential generator. It is a value type: copying
// it forks the sequence.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) lcg {
	return lcg{state: seed & lcgMask}
}

func (g *lcg) next() uint64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) & lcgMask
	return g.state
}

// intn returns a value in [0, n) scaled from the high bits of the state.
func (g *lcg) intn(n int) int {
	return int(g.next() * uint64(n) >> 31)
}

// permutation returns all piece types in an order fixed by a Fisher-Yates
// pass from the last index down.
func (g *lcg) permutation() []piece.Type {
	out := make([]piece.Type, piece.Count)
	copy(out, piece.Types[:])
	for i := len(out) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
