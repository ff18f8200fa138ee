package tetris

import "image/color"

// Color is the content of a board cell. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Yellow
	Orange
	Cyan
	Purple
	Blue

	// Highlight marks transient preview cells. It is never written by a lock.
	Highlight
)

// Palette is the set of colors a piece may be given at spawn.
var Palette = []Color{Red, Green, Yellow, Orange, Cyan, Purple, Blue}

var rgba = [...]color.RGBA{
	Empty:     {0, 0, 0, 255},
	Red:       {255, 85, 85, 255},
	Green:     {0, 255, 0, 255},
	Yellow:    {255, 255, 0, 255},
	Orange:    {255, 170, 0, 255},
	Cyan:      {0, 255, 255, 255},
	Purple:    {255, 0, 255, 255},
	Blue:      {0, 0, 255, 255},
	Highlight: {255, 255, 255, 96},
}

// RGBA returns the display color for c.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(rgba) {
		return rgba[Empty]
	}
	return rgba[c]
}

// IsEmpty reports whether the cell holds nothing.
func (c Color) IsEmpty() bool {
	return c == Empty
}
