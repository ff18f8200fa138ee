package tetris

// Point is a cell coordinate on the board. Row 0 is the top; y grows downward.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rand is the random source used for shape and color selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Piece is the falling, player controlled shape. Its cells are kept in board
// coordinates.
type Piece struct {
	shape    Shape
	cells    []Point
	pivot    Point
	rotation int
	color    Color
}

// Spawn creates a piece from the shape template with a random palette color.
// The pivot is the mean x, truncated toward zero, and the minimum y of the
// template.
func Spawn(shape Shape, rng Rand) *Piece {
	cells := shape.Template()

	sumX, minY := 0, cells[0].Y
	for _, c := range cells {
		sumX += c.X
		minY = min(minY, c.Y)
	}

	return &Piece{
		shape: shape,
		cells: cells,
		pivot: Point{X: sumX / len(cells), Y: minY},
		color: Palette[rng.IntN(len(Palette))],
	}
}

// SpawnNamed is Spawn for a shape given by name.
func SpawnNamed(name string, rng Rand) (*Piece, error) {
	shape, err := ParseShape(name)
	if err != nil {
		return nil, err
	}
	return Spawn(shape, rng), nil
}

func (p *Piece) Shape() Shape  { return p.shape }
func (p *Piece) Pivot() Point  { return p.pivot }
func (p *Piece) Rotation() int { return p.rotation }
func (p *Piece) Color() Color  { return p.color }

// Cells returns a copy of the occupied cells.
func (p *Piece) Cells() []Point {
	return append([]Point(nil), p.cells...)
}

// Translate moves the piece by (dx, dy). Callers validate the move first.
func (p *Piece) Translate(dx, dy int) {
	for i, c := range p.cells {
		p.cells[i] = c.Add(dx, dy)
	}
	p.pivot = p.pivot.Add(dx, dy)
}

// Rotate reflects every cell through the pivot. The reflection is its own
// inverse, so the piece only ever has two distinct orientations; clockwise
// only decides the direction the rotation counter moves.
func (p *Piece) Rotate(clockwise bool) {
	p.cells = p.Reflected()
	if clockwise {
		p.rotation++
	} else {
		p.rotation--
	}
}

// Reflected returns the cells Rotate would produce without changing the piece.
func (p *Piece) Reflected() []Point {
	out := make([]Point, len(p.cells))
	for i, c := range p.cells {
		out[i] = Point{X: p.pivot.X - (c.X - p.pivot.X), Y: p.pivot.Y - (c.Y - p.pivot.Y)}
	}
	return out
}

// Shifted returns the cells after a move of (dx, dy) without clipping.
func (p *Piece) Shifted(dx, dy int) []Point {
	out := make([]Point, len(p.cells))
	for i, c := range p.cells {
		out[i] = c.Add(dx, dy)
	}
	return out
}

// NextMove returns the cells after a move of (dx, dy), dropping any cell that
// would land outside [0, cols) x [0, rows). A move that pushes part of the
// piece off the grid therefore yields a shorter list.
func (p *Piece) NextMove(dx, dy, cols, rows int) []Point {
	out := make([]Point, 0, len(p.cells))
	for _, c := range p.cells {
		n := c.Add(dx, dy)
		if n.X >= 0 && n.X < cols && n.Y >= 0 && n.Y < rows {
			out = append(out, n)
		}
	}
	return out
}

// AboveBoard reports whether any cell is still above row 0.
func (p *Piece) AboveBoard() bool {
	for _, c := range p.cells {
		if c.Y < 0 {
			return true
		}
	}
	return false
}
