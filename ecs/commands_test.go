package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnSystem struct{}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 1})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

type deleteSystem struct {
	Entities ecs.Query[struct{ *Position }]
}

func (s *deleteSystem) Execute(frame *ecs.UpdateFrame) {
	for id := range s.Entities.Iter() {
		frame.Commands.Delete(id)
	}
}

func TestCommands(t *testing.T) {
	t.Run("spawns apply at the end of the frame", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		seen := -1
		scheduler.Register(&spawnSystem{})
		scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
			seen = frame.Storage.EntityCount()
		}))

		scheduler.Once()

		assert.Equal(t, 0, seen)
		assert.Equal(t, 2, storage.EntityCount())
	})

	t.Run("deletes run before spawns", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		storage.Spawn(Position{X: 9})
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&deleteSystem{})
		scheduler.Register(&spawnSystem{})

		scheduler.Once()

		query := ecs.NewQuery[struct{ *Position }](storage)
		query.Execute()
		var xs []int
		for item := range query.Values() {
			xs = append(xs, item.Position.X)
		}
		assert.ElementsMatch(t, []int{1, 3}, xs)
	})

	t.Run("defers run last in queue order", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		var log []string
		var counts []int
		scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
			frame.Commands.Defer(func() {
				log = append(log, "first")
				counts = append(counts, storage.EntityCount())
			})
			frame.Commands.Defer(func() { log = append(log, "second") })
		}))
		scheduler.Register(&spawnSystem{})
		scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) { log = append(log, "system") }))

		scheduler.Once()
		assert.Equal(t, []string{"system", "first", "second"}, log)

		scheduler.Once()
		assert.Len(t, log, 6, "buffer is reset between frames")
		assert.Equal(t, []int{2, 4}, counts)
	})
}
