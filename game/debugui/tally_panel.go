package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// TallyPanel shows cross-game counters.
type TallyPanel struct{}

func NewTallyPanel() *TallyPanel {
	return &TallyPanel{}
}

func (tp *TallyPanel) Render(t *game.Tally) {
	if !imgui.BeginV("Tally", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Games finished: %d", t.Games()))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", t.Pieces()))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", t.Rows()))
	imgui.Text(fmt.Sprintf("Best score: %d", t.BestScore()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.TreeNodeStr("Shapes") {
		if imgui.BeginTableV("ShapeTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()
			for _, shape := range tetris.Shapes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", t.Spawned(shape)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		if imgui.BeginTableV("ClearTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()
			for rows := 1; rows <= tetris.CellsPerShape; rows++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", t.Clears(rows)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
