// Package render hosts a game in an ebiten window: it maps keys to game
// commands, steps the game once per tick and draws the board.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// Overlay is an immediate-mode UI drawn on top of the board, such as the
// imgui debug panels.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// InputCapture reports whether an overlay widget has keyboard focus, in which
// case keys are not forwarded to the game.
type InputCapture interface {
	WantCaptureKeyboard() bool
}

var (
	background = color.RGBA{0, 0, 0, 255}
	gridLine   = color.RGBA{40, 40, 40, 255}
)

// Host implements ebiten.Game for a single game.
type Host struct {
	game    *game.Game
	overlay Overlay
	capture InputCapture
}

func NewHost(g *game.Game) *Host {
	return &Host{game: g}
}

// SetOverlay installs an overlay; nil removes it.
func (h *Host) SetOverlay(o Overlay) {
	h.overlay = o
}

// SetInputCapture installs the source consulted before forwarding keys.
func (h *Host) SetInputCapture(c InputCapture) {
	h.capture = c
}

// Run configures the window and blocks until it is closed.
func Run(h *Host, title string) error {
	cfg := h.game.World().Config
	ebiten.SetTPS(cfg.FPS)
	if h.overlay == nil {
		ebiten.SetWindowSize(cfg.ScreenSize, cfg.ScreenSize)
		ebiten.SetWindowTitle(title)
	}
	return ebiten.RunGame(h)
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if h.overlay != nil {
		h.overlay.BeginFrame()
		defer h.overlay.EndFrame()
	}

	if h.capture == nil || !h.capture.WantCaptureKeyboard() {
		if h.game.World().Over() && inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			h.game.Reset()
		}
		for _, cmd := range pollCommands() {
			h.game.Push(cmd)
		}
	}

	h.game.Step()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	w := h.game.World()
	bs := float32(w.Config.BlockSize)
	screen.Fill(background)

	drawGrid(screen, w.Config)

	for cell := range w.Board.All() {
		if !cell.Color.IsEmpty() {
			drawBlock(screen, cell.X, cell.Y, bs, cell.Color.RGBA())
		}
	}

	offset := w.Config.Cols
	for cell := range w.Board.Preview() {
		if !cell.Color.IsEmpty() {
			drawBlock(screen, offset+cell.X, cell.Y, bs, cell.Color.RGBA())
		}
	}

	piece := h.game.Piece()
	if piece != nil && !w.Over() {
		c := piece.Color().RGBA()
		for _, p := range h.game.Ghost() {
			if p.Y >= 0 {
				vector.StrokeRect(screen, float32(p.X)*bs+1, float32(p.Y)*bs+1, bs-2, bs-2, 1, c, false)
			}
		}
	}
	if piece != nil {
		for _, p := range piece.Cells() {
			if p.Y >= 0 {
				drawBlock(screen, p.X, p.Y, bs, piece.Color().RGBA())
			}
		}
	}

	drawStatus(screen, w)

	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := h.game.World().Config.ScreenSize
	if h.overlay != nil {
		h.overlay.Layout(size, size)
	}
	return size, size
}

func drawBlock(screen *ebiten.Image, x, y int, bs float32, c color.Color) {
	vector.DrawFilledRect(screen, float32(x)*bs, float32(y)*bs, bs-1, bs-1, c, false)
}

func drawGrid(screen *ebiten.Image, cfg tetris.Config) {
	bs := float32(cfg.BlockSize)
	width := float32(cfg.Cols) * bs
	height := float32(cfg.Rows) * bs
	vector.StrokeLine(screen, width, 0, width, height, 1, gridLine, false)
}

func drawStatus(screen *ebiten.Image, w *game.World) {
	x := w.Config.Cols*w.Config.BlockSize + 4
	y := w.Config.BlockSize * 6

	lines := []string{
		fmt.Sprintf("SCORE %d", w.Score),
		fmt.Sprintf("LINES %d", w.Lines),
	}
	switch w.State {
	case game.StatePaused:
		lines = append(lines, "", "PAUSED")
	case game.StateGameOver:
		lines = append(lines, "", "GAME OVER", "BKSP: again")
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*16)
	}
}
