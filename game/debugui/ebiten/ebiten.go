// Package ebiten provides Dear ImGui backend integration for the Ebiten game
// engine, usable as a render.Overlay.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. It replaces the plain
// window setup done by render.Run.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

func (b *ImguiBackend) EndFrame() {
	b.EbitenBackend.EndFrame()
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

func (b *ImguiBackend) Layout(width, height int) {
	b.EbitenBackend.Layout(width, height)
}
