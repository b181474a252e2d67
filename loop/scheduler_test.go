package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	Deltas       []time.Duration
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.Deltas = append(s.Deltas, frame.DeltaTime)
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

type dropSystem struct {
	seenPlaying int
}

func (s *dropSystem) Execute(frame *loop.Frame) {
	if frame.Controller.State() == game.Playing {
		s.seenPlaying++
	}
	frame.Commands.Tap(game.HardDrop)
}

func newController(t *testing.T) *game.Controller {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 99
	c := game.NewController(cfg)
	require.True(t, c.Start())
	return c
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		s := loop.NewScheduler(newController(t))
		s.Register(&countingSystem{name: "first", order: &order})
		s.Register(&countingSystem{name: "second", order: &order})

		s.Once(game.Frame)
		s.Once(game.Frame)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("delta time reaches systems", func(t *testing.T) {
		sys := &countingSystem{}
		s := loop.NewScheduler(newController(t))
		s.Register(sys)

		s.Once(10 * time.Millisecond)
		s.Once(20 * time.Millisecond)

		assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, sys.Deltas)
	})

	t.Run("queued input is applied after systems", func(t *testing.T) {
		c := newController(t)
		locks := 0
		c.Subscribe(game.EventPieceLock, func(game.Event) { locks++ })

		drop := &dropSystem{}
		s := loop.NewScheduler(c)
		s.Register(drop)

		for range 3 {
			s.Once(game.Frame)
		}

		assert.Equal(t, 3, locks)
		assert.Equal(t, 3, drop.seenPlaying)

		stats := s.GetStats()
		assert.Equal(t, int64(3), stats.Frames)
		// presses lock pieces, releases of a drop are ignored
		assert.Equal(t, int64(3), stats.InputsApplied)
		assert.Equal(t, int64(3), stats.InputsRejected)
	})

	t.Run("controller advances by delta time", func(t *testing.T) {
		c := newController(t)
		s := loop.NewScheduler(c)
		before, ok := c.Active()
		require.True(t, ok)

		s.Once(c.DropInterval())

		after, ok := c.Active()
		require.True(t, ok)
		assert.Equal(t, before.Position.Y+1, after.Position.Y)
	})

	t.Run("external commands are flushed", func(t *testing.T) {
		c := newController(t)
		s := loop.NewScheduler(c)

		s.Commands().Press(game.Pause)
		s.Once(game.Frame)

		assert.Equal(t, game.Paused, c.State())
		assert.Equal(t, 0, s.Commands().Len())
	})

	t.Run("deferred functions run after input", func(t *testing.T) {
		c := newController(t)
		s := loop.NewScheduler(c)

		var observed game.State
		s.Commands().Press(game.Pause)
		s.Commands().Defer(func() { observed = c.State() })
		s.Once(game.Frame)

		assert.Equal(t, game.Paused, observed)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		sys := &countingSystem{}
		s := loop.NewScheduler(newController(t))
		s.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}
		assert.Positive(t, sys.ExecuteCount)
	})

	t.Run("run stops on terminal state", func(t *testing.T) {
		c := newController(t)
		s := loop.NewScheduler(c)
		s.Register(&dropSystem{})

		done := make(chan struct{})
		go func() {
			s.Run(context.Background(), 100*time.Microsecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("scheduler did not stop after game over")
		}
		assert.Equal(t, game.GameOver, c.State())
	})
}

func TestSchedulerStats(t *testing.T) {
	s := loop.NewScheduler(newController(t))
	s.Register(&countingSystem{})
	s.Register(&dropSystem{})

	for range 5 {
		s.Once(game.Frame)
	}

	stats := s.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "dropSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
}

type recorder struct {
	calls []string
}

func (r *recorder) HandleInput(action game.Action, pressed bool) bool {
	state := "up"
	if pressed {
		state = "down"
	}
	r.calls = append(r.calls, action.String()+" "+state)
	return pressed
}

func TestCommandsFlush(t *testing.T) {
	s := loop.NewScheduler(newController(t))
	cmds := s.Commands()
	cmds.Press(game.MoveLeft)
	cmds.Tap(game.RotateCW)
	cmds.Release(game.MoveLeft)

	r := &recorder{}
	accepted := cmds.Flush(r)

	assert.Equal(t, 2, accepted)
	assert.Equal(t, []string{"MoveLeft down", "RotateCW down", "RotateCW up", "MoveLeft up"}, r.calls)
	assert.Equal(t, 0, cmds.Len())
	assert.Equal(t, 0, cmds.Flush(r))
}
