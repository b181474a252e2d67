package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetrion/game"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Workers    int
	LineTarget int
	UseHold    bool

	// Results
	Games      int
	Completed  int
	GameOvers  int
	Aborted    int
	TotalLines int
	TotalScore int
	BestScore  int
	BestSeed   uint64
	Placed     int
	Holds      int
	Spins      int
	Combos     int
	Frames     int64
	TotalTime  time.Duration

	GameTime   Stats
	FrameTime  Stats
	Lines      IntStats
	SystemTime map[string]time.Duration

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Add folds one game into the report.
func (r *Report) Add(g GameResult) {
	r.Games++
	switch g.State {
	case game.Completed:
		r.Completed++
	case game.GameOver:
		r.GameOvers++
	default:
		r.Aborted++
	}
	r.TotalLines += g.Stats.Lines
	r.TotalScore += g.Stats.Score
	if g.Stats.Score > r.BestScore || r.Games == 1 {
		r.BestScore = g.Stats.Score
		r.BestSeed = g.Seed
	}
	r.Placed += g.Placed
	r.Holds += g.Holds
	r.Spins += g.Spins
	r.Combos += g.Combos
	r.Frames += g.Frames

	r.GameTime.Samples = append(r.GameTime.Samples, g.Elapsed)
	if g.Frames > 0 {
		r.FrameTime.Samples = append(r.FrameTime.Samples, g.Elapsed/time.Duration(g.Frames))
	}
	r.Lines.Samples = append(r.Lines.Samples, g.Stats.Lines)

	if g.Schedule != nil {
		if r.SystemTime == nil {
			r.SystemTime = make(map[string]time.Duration)
		}
		for _, sys := range g.Schedule.Systems {
			r.SystemTime[sys.Name] += sys.TotalDuration
		}
	}
}

// Finalize computes the summary statistics.
func (r *Report) Finalize() {
	r.GameTime.Finalize()
	r.FrameTime.Finalize()
	r.Lines.Finalize()
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *IntStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetrion Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Line Target:** {{.LineTarget}}
- **Hold Enabled:** {{.UseHold}}

## Outcomes
- **Games:** {{.Games}} ({{.Completed}} completed, {{.GameOvers}} game over, {{.Aborted}} aborted)
- **Lines:** {{.TotalLines}} total, per game avg {{printf "%.1f" .Lines.Avg}} / min {{.Lines.Min}} / max {{.Lines.Max}}
- **Best Score:** {{.BestScore}} (seed {{.BestSeed}})
- **Average Score:** {{avg .TotalScore .Games}}
- **Pieces Placed:** {{.Placed}} ({{.Holds}} holds, {{.Spins}} spins, {{.Combos}} combos)

## Performance Results
- **Total Frames:** {{.Frames}}
- **Total Test Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
{{range $name, $total := .SystemTime}}- **{{$name}}:** {{$total}} total
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"avg": func(total, n int) string {
			if n == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(total)/float64(n))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
