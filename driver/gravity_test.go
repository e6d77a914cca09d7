package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGravityClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := NewGravityClock(500 * time.Millisecond)

	assert.False(t, clock.Due(start), "first observation only starts the interval")
	assert.False(t, clock.Due(start.Add(499*time.Millisecond)))
	assert.True(t, clock.Due(start.Add(500*time.Millisecond)))
	assert.False(t, clock.Due(start.Add(900*time.Millisecond)))
	assert.True(t, clock.Due(start.Add(1000*time.Millisecond)))

	clock.Reset(start.Add(1200 * time.Millisecond))
	assert.False(t, clock.Due(start.Add(1600*time.Millisecond)))
	assert.True(t, clock.Due(start.Add(1700*time.Millisecond)))
}

func TestGravityClockDefault(t *testing.T) {
	assert.Equal(t, DefaultGravity, NewGravityClock(0).Interval)
}

func TestKeyQueue(t *testing.T) {
	q := NewKeyQueue(2)
	assert.True(t, q.Push(KeyLeft))
	assert.True(t, q.Push(KeyRight))
	assert.False(t, q.Push(KeyDown), "full queue drops keys")

	assert.Equal(t, []Key{KeyLeft, KeyRight}, q.Drain())
	assert.Empty(t, q.Drain())
}
