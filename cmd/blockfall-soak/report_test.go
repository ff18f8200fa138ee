package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, ScoreSummary{}, summarize(nil))
	assert.Equal(t, ScoreSummary{Games: 3, Min: 100, Max: 650, Avg: 350}, summarize([]int{300, 100, 650}))
}

func TestReportGenerate(t *testing.T) {
	tally := game.NewTally()
	tally.Observe(game.Event{Kind: game.EventRowsCleared, Rows: 2})
	tally.Observe(game.Event{Kind: game.EventGameOver, Score: 350})

	r := &Report{
		Duration:  time.Second,
		Seed:      7,
		Cols:      20,
		Rows:      24,
		DropDelay: 2,
		Tally:     tally,
		Scores:    summarize([]int{350}),
		Scheduler: &ecs.SchedulerStats{
			Systems: []ecs.SystemStats{{Name: "GravitySystem", ExecutionCount: 5}},
		},
	}
	r.MemStatsStart.HeapAlloc = 1 << 20
	r.MemStatsEnd.HeapAlloc = 3 << 20
	r.MemStatsEnd.TotalAlloc = 5 << 19

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Playfield:** 20x24")
	assert.Contains(t, out, "**Rows Cleared:** 2")
	assert.Contains(t, out, "max 350")
	assert.Contains(t, out, " I=0")
	assert.Contains(t, out, " 2x=1")
	assert.Contains(t, out, "- GravitySystem:")
	assert.Contains(t, out, "**Heap Alloc:** 3.00 MiB (delta 2.00 MiB)")
	assert.Contains(t, out, "**Total Alloc:** 2.50 MiB during run")
	assert.NotContains(t, out, "GC Pause")
}
