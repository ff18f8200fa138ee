package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector shows the world state and an ASCII dump of the grid.
type BoardInspector struct {
	showGrid bool
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{showGrid: true}
}

func (bi *BoardInspector) Render(w *game.World, piece *tetris.Piece) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", w.State))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Pieces: %d", w.Score, w.Lines, w.Pieces))
	imgui.Text(fmt.Sprintf("Next: %s", w.Next))
	imgui.Separator()

	if piece == nil {
		imgui.Text("No active piece")
	} else if imgui.TreeNodeStr("Active Piece") {
		p := piece
		imgui.Text(fmt.Sprintf("Shape: %s", p.Shape()))
		imgui.Text(fmt.Sprintf("Pivot: (%d, %d)", p.Pivot().X, p.Pivot().Y))
		imgui.Text(fmt.Sprintf("Rotation: %d", p.Rotation()))
		for _, c := range p.Cells() {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", c.X, c.Y))
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show grid", &bi.showGrid)
	if bi.showGrid {
		for _, line := range gridLines(w.Board, piece) {
			imgui.Text(line)
		}
	}

	imgui.End()
}

// gridLines renders the playable board with the active piece as '@', locked
// cells as '#' and empty cells as '.'.
func gridLines(board *tetris.Board, piece *tetris.Piece) []string {
	active := make(map[tetris.Point]bool)
	if piece != nil {
		for _, c := range piece.Cells() {
			active[c] = true
		}
	}

	lines := make([]string, board.Rows())
	var sb strings.Builder
	for y := range board.Rows() {
		sb.Reset()
		for x, c := range board.Row(y) {
			switch {
			case active[tetris.Point{X: x, Y: y}]:
				sb.WriteByte('@')
			case !c.IsEmpty():
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}
