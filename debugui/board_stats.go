package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrion/loop"
)

// BoardStats shows the stack surface and a rolling history of its height
// and hole count.
type BoardStats struct {
	historyFrames int
	heights       []float32
	holes         []float32
	index         int
}

// NewBoardStats keeps historyFrames samples of each series.
func NewBoardStats(historyFrames int) *BoardStats {
	return &BoardStats{
		historyFrames: historyFrames,
		heights:       make([]float32, historyFrames),
		holes:         make([]float32, historyFrames),
	}
}

func (bs *BoardStats) Render(frame *loop.Frame) {
	stats := frame.Controller.BoardStats()
	bs.heights[bs.index] = float32(stats.Height)
	bs.holes[bs.index] = float32(stats.Holes)
	bs.index = (bs.index + 1) % bs.historyFrames

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 260), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Height: %d", stats.Height))
	imgui.Text(fmt.Sprintf("Holes: %d", stats.Holes))
	imgui.Text(fmt.Sprintf("Bumpiness: %d", stats.Bumpiness))

	imgui.Separator()
	imgui.Text("Height")
	imgui.PlotLinesFloatPtr("##height", &bs.heights[0], int32(len(bs.heights)))
	imgui.Text("Holes")
	imgui.PlotLinesFloatPtr("##holes", &bs.holes[0], int32(len(bs.holes)))

	if imgui.TreeNodeStr("Columns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ColumnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Column")
			imgui.TableSetupColumn("Height")
			imgui.TableHeadersRow()
			for x, h := range stats.Columns {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", x))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", h))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
