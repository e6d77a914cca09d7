// Package loop runs a falling-block game one frame at a time. Systems are
// executed in registration order against a shared engine, with per-system
// timing statistics and a deferred command buffer flushed at frame end.
package loop

// System is one stage of a frame. Implementations may keep their own state
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
