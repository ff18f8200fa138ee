package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Random seed for shapes and attract input.")
	every := flag.Int("every", 1, "Frames between attract commands.")
	screen := flag.Int("screen", tetris.DefaultScreenSize, "Screen size in pixels; sets the playfield size.")
	block := flag.Int("block", tetris.DefaultBlockSize, "Cell size in pixels.")
	dropDelay := flag.Int("drop-delay", 2, "Frames between gravity steps.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting soak run...")

	// 1. Build the game and its input
	cfg := tetris.NewConfig(*screen, *block)
	cfg.DropDelay = *dropDelay

	rng := rand.New(rand.NewPCG(*seed, *seed))
	g, err := game.New(cfg, rng)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	input := game.NewAttract(rng, *every)

	var finalScores []int
	g.Subscribe(func(ev game.Event) {
		if ev.Kind == game.EventGameOver {
			finalScores = append(finalScores, ev.Score)
		}
	})

	// 2. Run frames as fast as possible
	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Cols:           cfg.Cols,
		Rows:           cfg.Rows,
		DropDelay:      cfg.DropDelay,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if g.World().Over() {
				g.Reset()
			}
			for _, cmd := range input.Poll() {
				g.Push(cmd)
			}

			updateStart := time.Now()
			g.Step()
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Tally = g.Tally()
	report.Scores = summarize(finalScores)
	report.Scheduler = g.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
