package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

const title = "blockfall"

func main() {
	screen := flag.Int("screen", tetris.DefaultScreenSize, "Window width and height in pixels.")
	block := flag.Int("block", tetris.DefaultBlockSize, "Cell size in pixels.")
	fps := flag.Int("fps", tetris.DefaultFPS, "Frames per second.")
	dropDelay := flag.Int("drop-delay", tetris.DefaultDropDelay, "Frames between gravity steps.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the imgui debug panels.")
	verbose := flag.Bool("v", false, "Log game events.")
	flag.Parse()

	cfg := tetris.NewConfig(*screen, *block)
	cfg.FPS = *fps
	cfg.DropDelay = *dropDelay

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	g, err := game.New(cfg, rand.New(rand.NewPCG(*seed, *seed)))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Playfield %dx%d, seed %d\n", cfg.Cols, cfg.Rows, *seed)

	if *verbose {
		g.Subscribe(logEvent)
	}

	host := render.NewHost(g)
	if *debug {
		backend := debugui_ebiten.NewImguiBackend(title, cfg.ScreenSize, cfg.ScreenSize)
		panels := debugui.Attach(g)
		host.SetOverlay(backend)
		host.SetInputCapture(panels)
	}

	if err := render.Run(host, title); err != nil {
		log.Fatalf("Game exited: %v", err)
	}

	tally := g.Tally()
	log.Printf("Games %d, pieces %d, rows %d, best score %d\n", tally.Games(), tally.Pieces(), tally.Rows(), tally.BestScore())
}

func logEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventPieceSpawned, game.EventPieceLocked:
		log.Printf("[%d] %s %s\n", ev.Frame, ev.Kind, ev.Shape)
	case game.EventRowsCleared:
		log.Printf("[%d] %s %d (score %d)\n", ev.Frame, ev.Kind, ev.Rows, ev.Score)
	default:
		log.Printf("[%d] %s (score %d)\n", ev.Frame, ev.Kind, ev.Score)
	}
}
