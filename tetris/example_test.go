package tetris_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// Example drops an O piece onto an empty board and locks it.
func Example() {
	cfg := tetris.NewConfig(300, 30)
	board := tetris.NewBoard(cfg)
	rng := rand.New(rand.NewPCG(1, 1))

	piece := tetris.Spawn(tetris.ShapeO, rng)
	piece.Translate(cfg.SpawnColumn(), 0)

	for !board.Collides(piece.Shifted(0, 1)) {
		piece.Translate(0, 1)
	}
	board.SetCells(piece.Cells(), piece.Color())

	filled := 0
	for cell := range board.All() {
		if !cell.Color.IsEmpty() {
			filled++
		}
	}
	fmt.Println("filled cells:", filled)
	fmt.Println("lowest cell row:", piece.Cells()[3].Y)
	// Output:
	// filled cells: 4
	// lowest cell row: 9
}
