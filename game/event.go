package game

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

//go:generate go tool stringer -type=EventKind -trimprefix=Event

type EventKind uint8

const (
	EventPieceSpawned EventKind = iota
	EventPieceLocked
	EventRowsCleared
	EventPaused
	EventResumed
	EventGameOver
)

// Event describes something that happened during a frame. Shape is set for
// spawn and lock events, Rows for row clears.
type Event struct {
	Kind  EventKind
	Frame uint64
	Shape tetris.Shape
	Rows  int
	Score int
}

// EventBus is the singleton that fans events out to subscribers.
type EventBus struct {
	subscribers []func(Event)
}

// Subscribe registers fn to receive every event.
func (b *EventBus) Subscribe(fn func(Event)) {
	b.subscribers = append(b.subscribers, fn)
}

func (b *EventBus) publish(ev Event) {
	for _, fn := range b.subscribers {
		fn(ev)
	}
}

// emit stamps ev with the frame index and publishes it once the frame's
// structural changes are applied, so subscribers always observe a consistent
// world.
func emit(frame *ecs.UpdateFrame, bus *EventBus, ev Event) {
	ev.Frame = frame.Index
	frame.Commands.Defer(func() { bus.publish(ev) })
}
