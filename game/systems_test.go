package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystems(t *testing.T) {
	t.Run("events carry the frame index", func(t *testing.T) {
		g, rec := newTestGame(t)
		g.Step()
		g.Step()
		g.Push(game.HardDrop)
		g.Step()

		frames := make([]uint64, len(rec.events))
		for i, ev := range rec.events {
			frames[i] = ev.Frame
		}
		assert.Equal(t, []uint64{0, 2, 2}, frames)
	})

	t.Run("subscribers see the spawned piece", func(t *testing.T) {
		g, _ := newTestGame(t)
		var seen *tetris.Piece
		g.Subscribe(func(ev game.Event) {
			if ev.Kind == game.EventPieceSpawned {
				seen = g.Piece()
			}
		})

		g.Step()
		require.NotNil(t, seen)
		assert.Same(t, g.Piece(), seen)

		g.Push(game.HardDrop)
		g.Step()
		assert.Same(t, g.Piece(), seen)
	})

	t.Run("a single active piece entity", func(t *testing.T) {
		g, _ := newTestGame(t)
		for range 5 {
			g.Push(game.HardDrop)
			g.Step()
		}
		assert.Equal(t, 1, g.Storage().EntityCount())
	})

	t.Run("controls are consumed once", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.Step()

		g.Push(game.MoveLeft)
		g.Step()
		assert.Equal(t, oCells(2, 0), g.Piece().Cells())

		controls := ecs.NewSingleton[game.Controls](g.Storage())
		assert.Empty(t, controls.Get().Commands)

		g.Step()
		assert.Equal(t, oCells(2, 0), g.Piece().Cells())
	})

	t.Run("world is shared with systems", func(t *testing.T) {
		g, _ := newTestGame(t)
		world := ecs.NewSingleton[game.World](g.Storage())
		assert.Same(t, g.World(), world.Get())
	})

	t.Run("system names", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.Step()

		names := make([]string, 0, 6)
		for _, s := range g.Stats().Systems {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{
			"InputSystem", "GravitySystem", "LockSystem",
			"LineClearSystem", "SpawnSystem", "PreviewSystem",
		}, names)
	})
}

func TestGameRun(t *testing.T) {
	cfg := testConfig()
	cfg.FPS = 500
	g, err := game.New(cfg, fixedRand(3))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	g.Run(ctx, game.NewAttract(fixedRand(9), 1))

	assert.Positive(t, g.Stats().Frames)
	assert.Positive(t, g.Tally().Spawned(tetris.ShapeO))
}
