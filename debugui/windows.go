package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrust/engine"
)

// maskLines renders a mask as rows of '#' and '.'.
func maskLines(mask engine.Mask) []string {
	lines := make([]string, engine.MaskSize)
	for row := range engine.MaskSize {
		var b strings.Builder
		for col := range engine.MaskSize {
			if mask[row][col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		lines[row] = b.String()
	}
	return lines
}

func renderInspector(e *engine.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	active := e.Active()
	x, y := e.Anchor()

	imgui.Text(fmt.Sprintf("Screen: %s", e.Screen()))
	imgui.Text(fmt.Sprintf("Score: %d", e.Score()))
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", active.Kind, x, y))
	imgui.Text(fmt.Sprintf("Landing row: %d", e.LandingRow()))
	imgui.Text(fmt.Sprintf("Next: %s", e.Next().Kind))
	if held, ok := e.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s (can hold: %t)", held, e.CanHold()))
	} else {
		imgui.Text(fmt.Sprintf("Held: none (can hold: %t)", e.CanHold()))
	}

	stats := e.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Lines: %d (last lock: %d)", stats.Lines, stats.LastClear))
	imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))

	if imgui.TreeNodeStr("Spawns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, kind := range engine.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned[kind]))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Active Mask") {
		for _, line := range maskLines(active.Mask) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (o *Overlay) renderPerformance() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := o.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: n/a")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := o.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if o.Stats == nil {
		imgui.End()
		return
	}

	stats := o.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
