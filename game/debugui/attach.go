package debugui

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

// Attach spawns the default panels into g's storage and registers an
// ImguiSystem to draw them. It must be called after game.New so the panels
// run after the gameplay systems.
func Attach(g *game.Game) *ImguiSystem {
	storage := g.Storage()
	ecs.RegisterComponent[ImguiItem](storage.Registry())
	ecs.NewSingleton[ImguiInputState](storage)

	timer := NewFrameTimer()
	perf := NewPerformanceStats(120)
	inspector := NewBoardInspector()
	tally := NewTallyPanel()

	storage.Spawn(ImguiItem{Render: func() { perf.Render(g.Stats(), timer.GetDeltaTime()) }})
	storage.Spawn(ImguiItem{Render: func() { inspector.Render(g.World(), g.Piece()) }})
	storage.Spawn(ImguiItem{Render: func() { tally.Render(g.Tally()) }})

	sys := &ImguiSystem{}
	g.Scheduler().Register(sys)
	return sys
}
