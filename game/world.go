package game

import "github.com/plus3/blockfall/tetris"

// World is the singleton holding the board and the session counters. The
// active piece is an entity, see Falling.
type World struct {
	Config tetris.Config
	Board  *tetris.Board
	Next   tetris.Shape
	State  State
	Score  int
	Lines  int
	Pieces int

	rng    tetris.Rand
	locked bool // a piece was committed this frame
}

// newWorld creates an empty world. The first piece is spawned by the first
// frame.
func newWorld(cfg tetris.Config, rng tetris.Rand) World {
	return World{
		Config: cfg,
		Board:  tetris.NewBoard(cfg),
		Next:   tetris.RandomShape(rng),
		rng:    rng,
	}
}

// Reset clears the board and scores and rolls a new next shape.
func (w *World) Reset() {
	w.Board.Reset()
	w.Next = tetris.RandomShape(w.rng)
	w.State = StateFalling
	w.Score = 0
	w.Lines = 0
	w.Pieces = 0
	w.locked = false
}

// CanMove reports whether p could be moved by (dx, dy).
func (w *World) CanMove(p *tetris.Piece, dx, dy int) bool {
	return !w.Board.Collides(p.Shifted(dx, dy))
}

// CanRotate reports whether p could be rotated in place.
func (w *World) CanRotate(p *tetris.Piece) bool {
	return !w.Board.Collides(p.Reflected())
}

// Ghost returns the cells p would occupy after a hard drop.
func (w *World) Ghost(p *tetris.Piece) []tetris.Point {
	dy := 0
	for w.CanMove(p, 0, dy+1) {
		dy++
	}
	return p.Shifted(0, dy)
}

// Over reports whether the game has ended.
func (w *World) Over() bool {
	return w.State == StateGameOver
}
