package game

import "github.com/plus3/blockfall/tetris"

// InputSource supplies the commands for the next frame.
type InputSource interface {
	Poll() []Command
}

// Queue collects commands pushed between frames.
type Queue struct {
	pending []Command
}

// Push appends a command for the next frame.
func (q *Queue) Push(cmd Command) {
	q.pending = append(q.pending, cmd)
}

// Poll returns and clears the pending commands.
func (q *Queue) Poll() []Command {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Attract plays random moves, like an arcade attract mode. It never pauses.
type Attract struct {
	rng   tetris.Rand
	every int
	frame int
}

// NewAttract emits one command every `every` frames.
func NewAttract(rng tetris.Rand, every int) *Attract {
	return &Attract{rng: rng, every: max(every, 1)}
}

func (a *Attract) Poll() []Command {
	a.frame++
	if a.frame%a.every != 0 {
		return nil
	}

	switch n := a.rng.IntN(10); {
	case n < 4:
		return []Command{MoveLeft}
	case n < 7:
		return []Command{MoveRight}
	case n < 9:
		return []Command{Rotate}
	default:
		return []Command{HardDrop}
	}
}
