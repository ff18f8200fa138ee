package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestSpawnAndRead(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1, Y: 2}, Velocity{DX: 0, DY: 1})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)
	assert.Equal(t, &Velocity{DX: 0, DY: 1}, ecs.ReadComponent[Velocity](storage, id))
	assert.Nil(t, ecs.ReadComponent[Label](storage, id))

	pos.Y = 5
	assert.Equal(t, 5, ecs.ReadComponent[Position](storage, id).Y, "components are stored by pointer")
}

func TestArchetypeGrouping(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})
	c := storage.Spawn(Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId(), "argument order does not matter")
	assert.NotEqual(t, a.ArchetypeId(), c.ArchetypeId())
	assert.Len(t, storage.Archetypes(), 2)
	assert.Equal(t, 3, storage.EntityCount())

	types := storage.Archetypes()[0].Types()
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Velocity]()}, types)
}

func TestDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(first)

	assert.Nil(t, ecs.ReadComponent[Position](storage, first))
	assert.Equal(t, 1, storage.EntityCount())

	again := storage.Spawn(Position{X: 3})
	assert.Equal(t, first, again)
	assert.Equal(t, 3, ecs.ReadComponent[Position](storage, again).X)

	storage.Delete(ecs.NewEntityId(12345, 0))
	assert.Equal(t, 2, storage.EntityCount())
}

func TestPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 7})
	pos := ecs.ReadComponent[Position](storage, id)
	for i := range 500 {
		storage.Spawn(Position{X: i})
	}

	pos.X = 8
	assert.Equal(t, 8, ecs.ReadComponent[Position](storage, id).X)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Counter{}) }, "unregistered component")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestSingleton(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	counter := ecs.NewSingleton(storage, Counter{Value: 3})
	require.True(t, counter.Exists())
	counter.Get().Value++

	same := ecs.NewSingleton[Counter](storage, Counter{Value: 100})
	assert.Equal(t, 4, same.Get().Value, "initializer ignored when the singleton exists")

	ptr := counter.Get()
	storage.AddSingleton(Counter{Value: 9})
	assert.Same(t, ptr, counter.Get())
	assert.Equal(t, 9, ptr.Value)

	var unbound ecs.Singleton[Label]
	assert.Nil(t, unbound.Get())
	unbound.Init(storage)
	assert.False(t, unbound.Exists())
}
