package driver

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newHarness(e *engine.Engine) (*loop.Scheduler, *KeyQueue, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	queue := NewKeyQueue(16)

	scheduler := loop.NewScheduler(e)
	scheduler.SetClock(clock.Now)
	scheduler.Register(&InputSystem{Queue: queue})
	scheduler.Register(&GravitySystem{Clock: NewGravityClock(500 * time.Millisecond)})
	return scheduler, queue, clock
}

func TestGravitySystemOnlyWhilePlaying(t *testing.T) {
	e := newEngine(engine.O)
	scheduler, queue, clock := newHarness(e)

	scheduler.Once(0)
	clock.Advance(2 * time.Second)
	scheduler.Once(2)
	_, y := e.Anchor()
	assert.Equal(t, 0, y, "no gravity on the title screen")

	queue.Push(KeyConfirm)
	scheduler.Once(0)
	require.Equal(t, engine.Playing{}, e.Screen())

	clock.Advance(400 * time.Millisecond)
	scheduler.Once(0.4)
	_, y = e.Anchor()
	assert.Equal(t, 0, y, "interval restarts on entering play")

	clock.Advance(100 * time.Millisecond)
	scheduler.Once(0.1)
	_, y = e.Anchor()
	assert.Equal(t, 1, y)
}

func TestGravitySystemLocksAtFloor(t *testing.T) {
	e := newPlaying(engine.O)
	scheduler, _, clock := newHarness(e)

	scheduler.Once(0)
	for range 19 {
		clock.Advance(500 * time.Millisecond)
		scheduler.Once(0.5)
	}

	assert.Equal(t, 1, e.Stats().Locks)
	board := e.Board()
	assert.Equal(t, engine.Filled, board.Get(4, 19))
}

func TestInputSystemQuit(t *testing.T) {
	e := newPlaying(engine.O)
	scheduler, queue, _ := newHarness(e)

	queue.Push(KeyQuit)
	queue.Push(KeyHardDrop)
	scheduler.Once(0)

	assert.True(t, scheduler.Done())
	assert.Equal(t, 0, e.Stats().Locks, "keys after quit are not applied")
}

func TestInputSystemOpenLink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := newEngine(engine.O)
	queue := NewKeyQueue(8)

	opened := 0
	scheduler := loop.NewScheduler(e)
	scheduler.Register(&InputSystem{
		Queue: queue,
		OpenLink: func() error {
			opened++
			return errors.New("no browser")
		},
		Logger: zap.New(core),
	})

	queue.Push(KeyDown)
	queue.Push(KeyDown)
	queue.Push(KeyConfirm)
	scheduler.Once(0)

	assert.Equal(t, 1, opened)
	assert.False(t, scheduler.Done())
	assert.Equal(t, 1, logs.FilterMessage("open link failed").Len())
	assert.Equal(t, 2, logs.FilterMessage("screen transition").Len())
}
