package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/tetrion/game"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount    int
	Frames         int64
	InputsApplied  int64
	InputsRejected int64
	Systems        []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in order against one controller.
type Scheduler struct {
	controller  *game.Controller
	systems     []System
	systemStats []*systemStatsInternal
	commands    *Commands

	frames   int64
	applied  int64
	rejected int64
}

// NewScheduler creates a scheduler for the given controller.
func NewScheduler(controller *game.Controller) *Scheduler {
	return &Scheduler{
		controller: controller,
		systems:    make([]System, 0),
		commands:   newCommands(),
	}
}

// Controller returns the controller the scheduler drives.
func (s *Scheduler) Controller() *game.Controller {
	return s.controller
}

// Commands returns the buffer that will be flushed at the end of the next
// frame. Input from outside the scheduler, such as a keyboard, is queued here.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Register appends a system to the frame pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every system, applies the queued input, then advances the
// controller by dt.
func (s *Scheduler) Once(dt time.Duration) {
	frame := &Frame{
		Index:      s.frames,
		DeltaTime:  dt,
		Commands:   s.commands,
		Controller: s.controller,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	queued := s.commands.Len()
	accepted := s.commands.Flush(s.controller)
	s.applied += int64(accepted)
	s.rejected += int64(queued - accepted)

	s.controller.Update(dt)
	s.frames++
}

// Run executes frames at the given interval until the context is cancelled
// or the controller reaches a terminal state.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
			if s.controller.State().Terminal() {
				return
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:    len(s.systems),
		Frames:         s.frames,
		InputsApplied:  s.applied,
		InputsRejected: s.rejected,
		Systems:        make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
