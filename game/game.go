// Package game runs the falling-block state machine as an ordered pipeline of
// ecs systems. The board and counters live in a World singleton and the
// active piece is an entity, one scheduler tick per frame.
package game

import (
	"context"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// Game wires the storage, its systems and an input queue together.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	world     *ecs.Singleton[World]
	controls  *ecs.Singleton[Controls]
	events    *ecs.Singleton[EventBus]
	active    *activePiece
	queue     *Queue
	tally     *Tally
}

// New validates cfg and builds a game. rng drives shape and color selection;
// pass a seeded *rand.Rand for reproducible games.
func New(cfg tetris.Config, rng tetris.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	g := &Game{
		storage:  storage,
		world:    ecs.NewSingleton(storage, newWorld(cfg, rng)),
		controls: ecs.NewSingleton[Controls](storage),
		events:   ecs.NewSingleton[EventBus](storage),
		active:   ecs.NewQuery[struct{ *Falling }](storage),
		queue:    &Queue{},
		tally:    NewTally(),
	}

	g.scheduler = ecs.NewScheduler(storage)
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&LockSystem{})
	g.scheduler.Register(&LineClearSystem{})
	g.scheduler.Register(&SpawnSystem{})
	g.scheduler.Register(&PreviewSystem{})

	g.Subscribe(g.tally.Observe)
	return g, nil
}

// Push queues a command for the next frame.
func (g *Game) Push(cmd Command) {
	g.queue.Push(cmd)
}

// Step advances the game by one frame.
func (g *Game) Step() {
	g.controls.Get().Commands = g.queue.Poll()
	g.scheduler.Once()
}

// Run steps the game at the configured frame rate until ctx is cancelled.
// Commands from src are applied after any pushed ones.
func (g *Game) Run(ctx context.Context, src InputSource) {
	interval := time.Second / time.Duration(g.World().Config.FPS)
	g.scheduler.Run(ctx, interval, func() {
		input := g.queue.Poll()
		if src != nil {
			input = append(input, src.Poll()...)
		}
		g.controls.Get().Commands = input
	})
}

// Reset starts a new game on the same board.
func (g *Game) Reset() {
	g.queue.Poll()
	g.controls.Get().Commands = nil

	g.active.Execute()
	var ids []ecs.EntityId
	for id := range g.active.Iter() {
		ids = append(ids, id)
	}
	for _, id := range ids {
		g.storage.Delete(id)
	}
	g.World().Reset()
}

// Subscribe registers fn to receive events. Events are delivered at the end
// of the frame that produced them.
func (g *Game) Subscribe(fn func(Event)) {
	g.events.Get().Subscribe(fn)
}

// Piece returns the active piece, or nil between a lock and the next spawn.
func (g *Game) Piece() *tetris.Piece {
	g.active.Execute()
	_, piece := current(g.active)
	return piece
}

// Ghost returns where the active piece would land, or nil if there is none.
func (g *Game) Ghost() []tetris.Point {
	piece := g.Piece()
	if piece == nil {
		return nil
	}
	return g.World().Ghost(piece)
}

func (g *Game) World() *World              { return g.world.Get() }
func (g *Game) Tally() *Tally              { return g.tally }
func (g *Game) Stats() *ecs.SchedulerStats { return g.scheduler.GetStats() }
func (g *Game) Scheduler() *ecs.Scheduler  { return g.scheduler }
func (g *Game) Storage() *ecs.Storage      { return g.storage }
