package tetris

import "iter"

// Cell is one board position as seen by a renderer.
type Cell struct {
	X, Y  int
	Color Color
}

// Board is the grid of settled cells. Each row holds the playable columns
// followed by the reserved preview columns.
type Board struct {
	rows, cols, previewCols int
	grid                    [][]Color
}

// NewBoard allocates an empty board sized by cfg.
func NewBoard(cfg Config) *Board {
	b := &Board{
		rows:        cfg.Rows,
		cols:        cfg.Cols,
		previewCols: cfg.PreviewCols,
		grid:        make([][]Color, cfg.Rows),
	}
	for y := range b.grid {
		b.grid[y] = b.newRow()
	}
	return b
}

func (b *Board) newRow() []Color {
	return make([]Color, b.cols+b.previewCols)
}

func (b *Board) Rows() int        { return b.rows }
func (b *Board) Cols() int        { return b.cols }
func (b *Board) PreviewCols() int { return b.previewCols }

// IsOccupied reports whether any coordinate on the board is non-empty.
// Coordinates above the board (y < 0) are never occupied.
func (b *Board) IsOccupied(coords []Point) bool {
	for _, c := range coords {
		if c.Y >= 0 && !b.grid[c.Y][c.X].IsEmpty() {
			return true
		}
	}
	return false
}

// Collides reports whether coords leave the playable columns, fall below the
// last row, or hit a settled cell. Cells above the board are allowed.
func (b *Board) Collides(coords []Point) bool {
	for _, c := range coords {
		if c.X < 0 || c.X >= b.cols || c.Y >= b.rows {
			return true
		}
	}
	return b.IsOccupied(coords)
}

// SetCells writes color into every coordinate. Coordinates above the board
// are skipped.
func (b *Board) SetCells(coords []Point, color Color) {
	for _, c := range coords {
		if c.Y < 0 {
			continue
		}
		b.grid[c.Y][c.X] = color
	}
}

func (b *Board) full(y int) bool {
	for _, c := range b.grid[y][:b.cols] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearRows removes every full row, shifts the rows above it down and returns
// how many rows were removed. Preview columns keep their contents.
func (b *Board) ClearRows() int {
	dst := b.rows - 1
	for src := b.rows - 1; src >= 0; src-- {
		if b.full(src) {
			continue
		}
		if dst != src {
			copy(b.grid[dst][:b.cols], b.grid[src][:b.cols])
		}
		dst--
	}

	cleared := dst + 1
	for y := 0; y <= dst; y++ {
		clear(b.grid[y][:b.cols])
	}
	return cleared
}

// All yields every playable cell, row by row, including empty ones.
func (b *Board) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y, row := range b.grid {
			for x, c := range row[:b.cols] {
				if !yield(Cell{X: x, Y: y, Color: c}) {
					return
				}
			}
		}
	}
}

// SetPreview marks coords inside the preview region with Highlight. Coords are
// relative to the first preview column; anything outside the region is ignored.
func (b *Board) SetPreview(coords []Point) {
	for _, c := range coords {
		if c.X < 0 || c.X >= b.previewCols || c.Y < 0 || c.Y >= b.rows {
			continue
		}
		b.grid[c.Y][b.cols+c.X] = Highlight
	}
}

// ResetPreview empties the preview region.
func (b *Board) ResetPreview() {
	for _, row := range b.grid {
		clear(row[b.cols:])
	}
}

// Preview yields the preview region with x relative to its first column.
func (b *Board) Preview() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y, row := range b.grid {
			for x, c := range row[b.cols:] {
				if !yield(Cell{X: x, Y: y, Color: c}) {
					return
				}
			}
		}
	}
}

// Row returns a copy of the playable part of row y.
func (b *Board) Row(y int) []Color {
	return append([]Color(nil), b.grid[y][:b.cols]...)
}

// Fill sets every playable cell of row y to color.
func (b *Board) Fill(y int, color Color) {
	for x := range b.cols {
		b.grid[y][x] = color
	}
}

// Reset empties the whole board.
func (b *Board) Reset() {
	for _, row := range b.grid {
		clear(row)
	}
}
