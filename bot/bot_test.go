package bot_test

import (
	"testing"

	"github.com/plus3/tetrion/board"
	"github.com/plus3/tetrion/bot"
	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
	"github.com/plus3/tetrion/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stack returns a default sized board whose bottom rows are given, top first.
func stack(rows ...string) *board.Board {
	height := board.DefaultVisible + board.DefaultHidden
	all := make([]string, 0, height)
	for range height - len(rows) {
		all = append(all, "..........")
	}
	return board.MustParse(board.DefaultHidden, append(all, rows...)...)
}

func TestSearch(t *testing.T) {
	w := bot.DefaultWeights()

	t.Run("flat placement on an empty board", func(t *testing.T) {
		best, ok := bot.Search(board.NewDefault(), piece.I, 0, w)
		require.True(t, ok)
		assert.Equal(t, piece.North, best.Rotation)
		assert.Equal(t, piece.Point{X: 0, Y: 20}, best.Position)
		assert.Zero(t, best.Lines)
	})

	t.Run("prefers clearing a line", func(t *testing.T) {
		best, ok := bot.Search(stack("IIIIIIIII."), piece.I, 0, w)
		require.True(t, ok)
		assert.Equal(t, 1, best.Lines)
		assert.Equal(t, piece.East, best.Rotation)
		assert.Equal(t, piece.Point{X: 7, Y: 18}, best.Position)
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		b := stack("IIIIIIIII.")
		before := b.String()
		_, _ = bot.Search(b, piece.T, 0, w)
		assert.Equal(t, before, b.String())
	})

	t.Run("no room", func(t *testing.T) {
		full := board.MustParse(0, "OOOO", "OOOO", "OOOO", "OOOO")
		_, ok := bot.Search(full, piece.T, 0, w)
		assert.False(t, ok)
	})
}

func TestEvaluate(t *testing.T) {
	assert.Zero(t, bot.DefaultWeights().Evaluate(board.NewDefault(), 0))

	b := stack(
		".I........",
		"..........",
		"IIII......",
	)
	stats := b.Stats()
	assert.Equal(t, -float64(stats.Holes), bot.Weights{Holes: -1}.Evaluate(b, 0))
	assert.Equal(t, float64(stats.Bumpiness), bot.Weights{Bumpiness: 1}.Evaluate(b, 0))
	assert.Equal(t, 2.0, bot.Weights{Lines: 1}.Evaluate(b, 2))
	assert.Equal(t, 6.0, bot.Weights{AggregateHeight: 1}.Evaluate(b, 0))
}

func play(t *testing.T, seed uint64, useHold bool) (*game.Controller, *bot.Player) {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	cfg.LineTarget = 40
	c := game.NewController(cfg)
	require.True(t, c.Start())

	p := bot.NewPlayer(bot.DefaultWeights())
	p.UseHold = useHold
	s := loop.NewScheduler(c)
	s.Register(p)

	for range 50_000 {
		if c.State().Terminal() {
			break
		}
		s.Once(game.Frame)
	}
	return c, p
}

func TestPlayerCompletesARun(t *testing.T) {
	for _, useHold := range []bool{false, true} {
		c, p := play(t, 11, useHold)
		assert.Equal(t, game.Completed, c.State(), "hold=%v", useHold)
		assert.GreaterOrEqual(t, c.Stats().Lines, 40)
		assert.Positive(t, p.Placed)
		if !useHold {
			assert.Zero(t, p.Holds)
		}
	}
}

func TestPlayerIsDeterministic(t *testing.T) {
	a, _ := play(t, 5, true)
	b, _ := play(t, 5, true)
	assert.Equal(t, a.Stats(), b.Stats())
	assert.Equal(t, a.Board().String(), b.Board().String())
}

func TestPlayerIdlesOutsidePlay(t *testing.T) {
	c := game.NewController(game.DefaultConfig())
	s := loop.NewScheduler(c)
	p := bot.NewPlayer(bot.DefaultWeights())
	s.Register(p)

	s.Once(game.Frame)

	_, planned := p.Plan()
	assert.False(t, planned)
	assert.Zero(t, s.GetStats().InputsApplied+s.GetStats().InputsRejected)
}

func BenchmarkSearch(b *testing.B) {
	field := stack(
		"....T.....",
		"...TTT..OO",
		"SS.IIII.OO",
	)
	w := bot.DefaultWeights()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bot.Search(field, piece.Types[i%piece.Count], 0, w)
	}
}
