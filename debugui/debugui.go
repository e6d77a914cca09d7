// Package debugui provides a Dear ImGui overlay for the GUI front-end. It
// shows an engine inspector and scheduler performance windows, rendered
// through deferred frame commands so every window is drawn after the frame's
// game systems have run.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrust/loop"
)

// Backend wraps the Ebiten-specific Dear ImGui backend.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui backend and its window. ImGui's ini file is
// disabled so window layout is not persisted between runs.
func NewBackend(title string, width, height int) *Backend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: backend}
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a loop system that queues the debug windows each frame.
type Overlay struct {
	// Stats reports scheduler statistics for the performance window. Nil
	// hides the per-system table.
	Stats   func() *loop.SchedulerStats
	history *FrameHistory
	input   InputState
}

func NewOverlay(historyFrames int, stats func() *loop.SchedulerStats) *Overlay {
	return &Overlay{
		Stats:   stats,
		history: NewFrameHistory(historyFrames),
	}
}

// Input returns the capture state observed during the last frame.
func (o *Overlay) Input() InputState {
	return o.input
}

func (o *Overlay) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.history.Push(float32(frame.DeltaTime * 1000.0))

	e := frame.Engine
	frame.Commands.Defer(func() { renderInspector(e) })
	frame.Commands.Defer(o.renderPerformance)
}
