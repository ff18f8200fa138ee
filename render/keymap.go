package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
)

// Key repeat timing, in ticks, for bindings that auto-repeat while held.
const (
	repeatDelay    = 8
	repeatInterval = 3
)

type binding struct {
	key    ebiten.Key
	cmd    game.Command
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, game.MoveLeft, true},
	{ebiten.KeyArrowRight, game.MoveRight, true},
	{ebiten.KeySpace, game.HardDrop, false},
	{ebiten.KeyR, game.Rotate, false},
	{ebiten.KeyArrowUp, game.Rotate, false},
	{ebiten.KeyP, game.Pause, false},
	{ebiten.KeyEscape, game.Pause, false},
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	if !repeat || d < repeatDelay {
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}

// pollCommands translates the keyboard state of this tick into commands.
func pollCommands() []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		if repeating(inpututil.KeyPressDuration(b.key), b.repeat) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
