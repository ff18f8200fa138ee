package game

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies the frame's commands to the active piece.
type InputSystem struct {
	World    ecs.Singleton[World]
	Controls ecs.Singleton[Controls]
	Events   ecs.Singleton[EventBus]
	Active   activePiece
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	controls := s.Controls.Get()
	cmds := controls.Commands
	controls.Commands = nil

	_, piece := current(&s.Active)
	for _, cmd := range cmds {
		switch w.State {
		case StatePaused:
			if cmd == Pause {
				w.State = StateFalling
				emit(frame, s.Events.Get(), Event{Kind: EventResumed})
			}
			continue
		case StateFalling:
		default:
			continue
		}

		if cmd == Pause {
			w.State = StatePaused
			emit(frame, s.Events.Get(), Event{Kind: EventPaused})
			continue
		}
		if piece == nil {
			continue
		}

		switch cmd {
		case MoveLeft:
			if w.CanMove(piece, -1, 0) {
				piece.Translate(-1, 0)
			}
		case MoveRight:
			if w.CanMove(piece, 1, 0) {
				piece.Translate(1, 0)
			}
		case Rotate:
			if w.CanRotate(piece) {
				piece.Rotate(true)
			}
		case HardDrop:
			for w.CanMove(piece, 0, 1) {
				piece.Translate(0, 1)
			}
			w.State = StateLocking
		}
	}
}

// GravitySystem moves the piece down one row every DropDelay frames.
type GravitySystem struct {
	World  ecs.Singleton[World]
	Active ecs.Query[struct {
		*Falling
		*Gravity
	}]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	if w.State != StateFalling {
		return
	}

	for item := range s.Active.Values() {
		item.Gravity.Elapsed++
		if item.Gravity.Elapsed < w.Config.DropDelay {
			continue
		}
		item.Gravity.Elapsed = 0

		if w.CanMove(item.Falling.Piece, 0, 1) {
			item.Falling.Piece.Translate(0, 1)
			continue
		}
		w.State = StateLocking
	}
}

// LockSystem commits a piece that can no longer fall. A piece that still has
// cells above the board tops out and ends the game.
type LockSystem struct {
	World  ecs.Singleton[World]
	Events ecs.Singleton[EventBus]
	Active activePiece
}

func (s *LockSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	id, piece := current(&s.Active)
	if w.State != StateLocking || piece == nil {
		return
	}

	if piece.AboveBoard() {
		w.State = StateGameOver
		emit(frame, s.Events.Get(), Event{Kind: EventGameOver, Shape: piece.Shape(), Score: w.Score})
		return
	}

	w.Board.SetCells(piece.Cells(), piece.Color())
	emit(frame, s.Events.Get(), Event{Kind: EventPieceLocked, Shape: piece.Shape()})
	frame.Commands.Delete(id)
	w.Pieces++
	w.locked = true
}

// LineClearSystem removes completed rows after a lock and scores them.
type LineClearSystem struct {
	World  ecs.Singleton[World]
	Events ecs.Singleton[EventBus]
}

func (s *LineClearSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	if !w.locked {
		return
	}

	rows := w.Board.ClearRows()
	if rows == 0 {
		return
	}
	w.Lines += rows
	w.Score += ScoreForRows(rows)
	emit(frame, s.Events.Get(), Event{Kind: EventRowsCleared, Rows: rows, Score: w.Score})
}

// SpawnSystem brings in the next piece whenever there is no active one. The
// entity of a piece locked this frame is only removed when the frame ends, so
// the lock flag stands in for it.
type SpawnSystem struct {
	World  ecs.Singleton[World]
	Events ecs.Singleton[EventBus]
	Active activePiece
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	if w.State == StateGameOver || w.State == StatePaused {
		return
	}
	if s.Active.Len() > 0 && !w.locked {
		return
	}
	w.locked = false

	piece := tetris.Spawn(w.Next, w.rng)
	piece.Translate(w.Config.SpawnColumn(), 0)
	w.Next = tetris.RandomShape(w.rng)
	frame.Commands.Spawn(Falling{Piece: piece}, Gravity{})

	if w.Board.IsOccupied(piece.Cells()) {
		w.State = StateGameOver
		emit(frame, s.Events.Get(), Event{Kind: EventGameOver, Shape: piece.Shape(), Score: w.Score})
		return
	}

	w.State = StateFalling
	emit(frame, s.Events.Get(), Event{Kind: EventPieceSpawned, Shape: piece.Shape()})
}

// PreviewSystem redraws the next shape into the preview columns.
type PreviewSystem struct {
	World ecs.Singleton[World]
}

func (s *PreviewSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.World.Get()
	w.Board.ResetPreview()
	if w.Board.PreviewCols() == 0 {
		return
	}
	w.Board.SetPreview(previewCells(w.Next, w.Board.PreviewCols()))
}

// previewCells places the shape template one row below the top of the
// preview region, centred horizontally.
func previewCells(shape tetris.Shape, width int) []tetris.Point {
	cells := shape.Template()

	minX, maxX, minY := cells[0].X, cells[0].X, cells[0].Y
	for _, c := range cells {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
	}
	dx := (width-(maxX-minX+1))/2 - minX
	dy := 1 - minY

	for i, c := range cells {
		cells[i] = c.Add(dx, dy)
	}
	return cells
}
