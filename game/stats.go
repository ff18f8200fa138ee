package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Tally accumulates per-shape and per-clear-size counters across games.
type Tally struct {
	spawned *intmap.Map[int, int]
	clears  *intmap.Map[int, int]
	games   int
	pieces  int
	rows    int
	best    int
}

func NewTally() *Tally {
	return &Tally{
		spawned: intmap.New[int, int](len(tetris.Shapes)),
		clears:  intmap.New[int, int](4),
	}
}

// Observe updates the counters from a game event. It is meant to be passed to
// Game.Subscribe.
func (t *Tally) Observe(ev Event) {
	switch ev.Kind {
	case EventPieceSpawned:
		n, _ := t.spawned.Get(int(ev.Shape))
		t.spawned.Put(int(ev.Shape), n+1)
	case EventPieceLocked:
		t.pieces++
	case EventRowsCleared:
		n, _ := t.clears.Get(ev.Rows)
		t.clears.Put(ev.Rows, n+1)
		t.rows += ev.Rows
	case EventGameOver:
		t.games++
		t.best = max(t.best, ev.Score)
	}
}

// Spawned returns how many pieces of shape were spawned.
func (t *Tally) Spawned(shape tetris.Shape) int {
	n, _ := t.spawned.Get(int(shape))
	return n
}

// Clears returns how many locks cleared exactly rows rows.
func (t *Tally) Clears(rows int) int {
	n, _ := t.clears.Get(rows)
	return n
}

// ClearSizes returns the number of distinct clear sizes seen.
func (t *Tally) ClearSizes() int {
	return t.clears.Len()
}

func (t *Tally) Games() int     { return t.games }
func (t *Tally) Pieces() int    { return t.pieces }
func (t *Tally) Rows() int      { return t.rows }
func (t *Tally) BestScore() int { return t.best }
