package bag_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrion/bag"
	"github.com/plus3/tetrion/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(b *bag.Bag, n int) []piece.Type {
	out := make([]piece.Type, n)
	for i := range out {
		out[i] = b.Next()
	}
	return out
}

func TestEveryBagIsAPermutation(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, 0xDEADBEEF} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			b := bag.New(seed)
			for round := 0; round < 50; round++ {
				seen := make(map[piece.Type]int)
				for _, typ := range draw(b, piece.Count) {
					seen[typ]++
				}
				require.Len(t, seen, piece.Count, "round %d", round)
				for typ, n := range seen {
					assert.Equal(t, 1, n, "round %d type %s", round, typ)
				}
			}
		})
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := bag.New(1234)
	b := bag.New(1234)
	assert.Equal(t, draw(a, 70), draw(b, 70))

	c := bag.New(4321)
	assert.NotEqual(t, draw(bag.New(1234), 70), draw(c, 70))
}

func TestPreviewDoesNotConsume(t *testing.T) {
	reference := draw(bag.New(99), 130)

	b := bag.New(99)
	var got []piece.Type
	for i := 0; i < 100; i++ {
		// Previews of varying depth, including ones far beyond the two
		// buffered bags, must agree with the upcoming draws.
		preview := b.Preview(i%23 + 1)
		assert.Equal(t, reference[i:i+len(preview)], preview)
		got = append(got, b.Next())
	}
	assert.Equal(t, reference[:100], got)
}

func TestPreviewEdgeCases(t *testing.T) {
	b := bag.New(7)
	assert.Nil(t, b.Preview(0))
	assert.Nil(t, b.Preview(-3))
	assert.Len(t, b.Preview(30), 30)

	want := b.Preview(3)
	p := b.Preview(3)
	p[0], p[1], p[2] = piece.O, piece.O, piece.O
	assert.Equal(t, want, b.Preview(3))
}

func TestReset(t *testing.T) {
	b := bag.New(5)
	first := draw(b, 10)
	b.Reset(5)
	assert.Equal(t, first, draw(b, 10))
	assert.Equal(t, uint64(5), b.Seed())

	b.Reset(6)
	assert.Equal(t, uint64(6), b.Seed())
	assert.Equal(t, draw(bag.New(6), 14), draw(b, 14))
}

func BenchmarkNext(b *testing.B) {
	bg := bag.New(1)
	for i := 0; i < b.N; i++ {
		bg.Next()
	}
}
