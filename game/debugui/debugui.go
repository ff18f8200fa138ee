// Package debugui provides Dear ImGui debug panels for a running game. Panels
// are entities rendered by a system registered on the game scheduler, so they
// see the world exactly as the frame left it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// ImguiItem is a component holding a Dear ImGui render function called once
// per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame and
// records the current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}

// WantCaptureKeyboard reports whether the panels held keyboard focus as of the
// last frame. Hosts use it to stop forwarding keys to the game.
func (i *ImguiSystem) WantCaptureKeyboard() bool {
	state := i.InputState.Get()
	return state != nil && state.WantCaptureKeyboard
}
