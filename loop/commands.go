package loop

// Commands buffers work that must run after every system of the frame has
// executed.
type Commands struct {
	defers []func()
	quit   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed, in queue order.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Quit asks the scheduler to stop once the current frame completes.
func (c *Commands) Quit() {
	c.quit = true
}

// flush runs deferred functions, resets the buffer and reports whether a
// quit was requested.
func (c *Commands) flush() bool {
	for _, fn := range c.defers {
		fn()
	}

	quit := c.quit
	c.defers = c.defers[:0]
	c.quit = false
	return quit
}
