package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrion/game"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty IntStats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportAdd(t *testing.T) {
	r := &Report{}
	r.Add(GameResult{Seed: 1, State: game.Completed, Stats: game.Stats{Lines: 40, Score: 900}, Frames: 100, Elapsed: time.Second})
	r.Add(GameResult{Seed: 2, State: game.GameOver, Stats: game.Stats{Lines: 10, Score: 1200}, Frames: 50, Elapsed: time.Second})
	r.Add(GameResult{Seed: 3, State: game.Playing})
	r.Finalize()

	assert.Equal(t, 3, r.Games)
	assert.Equal(t, 1, r.Completed)
	assert.Equal(t, 1, r.GameOvers)
	assert.Equal(t, 1, r.Aborted)
	assert.Equal(t, 50, r.TotalLines)
	assert.Equal(t, 1200, r.BestScore)
	assert.Equal(t, uint64(2), r.BestSeed)
	assert.Equal(t, 0, r.Lines.Min)
	assert.Equal(t, 40, r.Lines.Max)
	assert.Len(t, r.FrameTime.Samples, 2)
}

func TestPlayGameAndReport(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	cfg.LineTarget = 20

	result := playGame(context.Background(), cfg, true)
	assert.Equal(t, game.Completed, result.State)
	assert.Equal(t, uint64(3), result.Seed)
	assert.GreaterOrEqual(t, result.Stats.Lines, 20)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, result.Frames, result.Schedule.Frames)

	r := &Report{Workers: 1, LineTarget: 20, UseHold: true}
	r.Add(result)
	r.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "# Tetrion Stress Test Report")
	assert.Contains(t, buf.String(), "1 completed")
	assert.Contains(t, buf.String(), "**Player:**")
}

func TestPlayGameHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := playGame(ctx, game.DefaultConfig(), false)
	assert.Equal(t, game.Playing, result.State)
	assert.Zero(t, result.Frames)
}
