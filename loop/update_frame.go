package loop

import (
	"time"

	"github.com/plus3/tetrust/engine"
)

// UpdateFrame is handed to every system during a single scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Now       time.Time
	Engine    *engine.Engine
	Commands  *Commands
}

func newUpdateFrame(dt float64, now time.Time, e *engine.Engine, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Now:       now,
		Engine:    e,
		Commands:  commands,
	}
}
