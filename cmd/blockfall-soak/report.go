package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	Cols      int
	Rows      int
	DropDelay int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Tally          *game.Tally
	Scores         ScoreSummary
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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

// ScoreSummary describes the final scores of finished games.
type ScoreSummary struct {
	Games int
	Min   int
	Max   int
	Avg   float64
}

func summarize(scores []int) ScoreSummary {
	if len(scores) == 0 {
		return ScoreSummary{}
	}

	s := ScoreSummary{Games: len(scores), Min: scores[0], Max: scores[0]}
	total := 0
	for _, score := range scores {
		s.Min = min(s.Min, score)
		s.Max = max(s.Max, score)
		total += score
	}
	s.Avg = float64(total) / float64(len(scores))
	return s
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Playfield:** {{.Cols}}x{{.Rows}}
- **Drop Delay:** {{.DropDelay}} frames

## Games
- **Games Finished:** {{.Scores.Games}}
- **Pieces Locked:** {{.Tally.Pieces}}
- **Rows Cleared:** {{.Tally.Rows}}
- **Score:** min {{.Scores.Min}}, max {{.Scores.Max}}, avg {{printf "%.1f" .Scores.Avg}}
- **Shapes Spawned:**{{range shapes}} {{.}}={{$.Tally.Spawned .}}{{end}}
- **Clears:**{{range $n := clearSizes}} {{$n}}x={{$.Tally.Clears $n}}{{end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
{{range .Scheduler.Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}, runs {{.ExecutionCount}}
{{end}}
## Memory Usage
- **Heap Alloc:** {{mb .MemStatsEnd.HeapAlloc}} MiB (delta {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}} MiB)
- **Total Alloc:** {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MiB during run

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
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
		"shapes": func() []tetris.Shape {
			return tetris.Shapes
		},
		"clearSizes": func() []int {
			return []int{1, 2, 3, 4}
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
