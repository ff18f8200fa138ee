package tetris

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// ErrUnknownShape is returned when a shape name is not in the shape table.
var ErrUnknownShape = errors.New("unknown shape")

// Shape identifies one of the seven piece templates.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	shapeCount = iota
)

// Shapes lists every shape in table order.
var Shapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// CellsPerShape is the number of cells of every template.
const CellsPerShape = 4

// templates are cell offsets around the origin, y growing downward.
var templates = [shapeCount][CellsPerShape]Point{
	ShapeI: {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	ShapeJ: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeO: {{-1, -1}, {-1, 0}, {0, -1}, {0, 0}},
	ShapeS: {{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
	ShapeT: {{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeZ: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
}

// Template returns a copy of the shape's cell offsets.
func (s Shape) Template() []Point {
	if s >= shapeCount {
		panic("tetris: invalid shape " + s.String())
	}
	t := templates[s]
	return append([]Point(nil), t[:]...)
}

// ParseShape resolves a single-letter shape name such as "T".
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// RandomShape picks a shape uniformly.
func RandomShape(rng Rand) Shape {
	return Shapes[rng.IntN(len(Shapes))]
}
