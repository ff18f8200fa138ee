package game

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// Falling is attached to the entity of the piece under player control.
type Falling struct {
	Piece *tetris.Piece
}

// Gravity counts frames since the piece last fell.
type Gravity struct {
	Elapsed int
}

// Controls is the singleton holding the commands for the current frame.
type Controls struct {
	Commands []Command
}

// RegisterComponents registers the entity components used by the game
// systems.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Falling](registry)
	ecs.RegisterComponent[Gravity](registry)
}

type activePiece = ecs.Query[struct{ *Falling }]

// current returns the active piece, or nil between a lock and the next spawn.
func current(q *activePiece) (ecs.EntityId, *tetris.Piece) {
	id, item, ok := q.First()
	if !ok {
		return 0, nil
	}
	return id, item.Falling.Piece
}
