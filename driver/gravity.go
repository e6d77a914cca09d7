package driver

import "time"

// DefaultGravity is one gravity step per half second of wall-clock time.
const DefaultGravity = 500 * time.Millisecond

// GravityClock fires at most once per Interval, measured from the last time
// it fired or was reset.
type GravityClock struct {
	Interval time.Duration
	last     time.Time
}

func NewGravityClock(interval time.Duration) *GravityClock {
	if interval <= 0 {
		interval = DefaultGravity
	}
	return &GravityClock{Interval: interval}
}

// Reset restarts the interval at now.
func (c *GravityClock) Reset(now time.Time) {
	c.last = now
}

// Due reports whether an interval has elapsed since the last tick and, if
// so, records now as the new last tick.
func (c *GravityClock) Due(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) < c.Interval {
		return false
	}
	c.last = now
	return true
}
