package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
	"github.com/stretchr/testify/assert"
)

type DropSystem struct {
	ExecuteCount int
	Locks        int
}

func (s *DropSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	if !frame.Engine.MovePiece(0, 1) {
		frame.Engine.LockPiece()
		s.Locks++
	}
}

type ScoreWatchSystem struct {
	ExecuteCount int
	LastScore    int
}

func (s *ScoreWatchSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.LastScore = frame.Engine.Score()
}

func newPlayingEngine() *engine.Engine {
	e := engine.New()
	e.HandleTitleInput(engine.TitleConfirm)
	return e
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())

		var order []string
		scheduler.RegisterNamed("first", loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "first") }))
		scheduler.RegisterNamed("second", loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())
		drop := &DropSystem{}
		scheduler.Register(drop)

		for range 19 {
			scheduler.Once(0.5)
		}

		assert.Equal(t, 19, drop.ExecuteCount)
		assert.GreaterOrEqual(t, drop.Locks, 1, "a piece reaches the floor within 19 drops")
	})

	t.Run("frame carries engine and clock", func(t *testing.T) {
		e := newPlayingEngine()
		scheduler := loop.NewScheduler(e)
		stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		scheduler.SetClock(func() time.Time { return stamp })

		var seen *loop.UpdateFrame
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) { seen = frame }))
		scheduler.Once(0.25)

		assert.Same(t, e, seen.Engine)
		assert.Same(t, e, scheduler.Engine())
		assert.Equal(t, stamp, seen.Now)
		assert.Equal(t, 0.25, seen.DeltaTime)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())
		watch := &ScoreWatchSystem{}

		var events []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Defer(func() { events = append(events, "deferred") })
			events = append(events, "system")
		}))
		scheduler.Register(watch)
		scheduler.Once(1.0)

		assert.Equal(t, []string{"system", "deferred"}, events)
		assert.Equal(t, 1, watch.ExecuteCount)

		scheduler.Once(1.0)
		assert.Equal(t, []string{"system", "deferred", "system", "deferred"}, events, "defers do not repeat")
	})

	t.Run("quit request", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Quit()
		}))

		assert.False(t, scheduler.Done())
		scheduler.Once(1.0)
		assert.True(t, scheduler.Done())
	})

	t.Run("run stops on quit", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())
		frames := 0
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frames++
			if frames == 3 {
				frame.Commands.Quit()
			}
		}))

		done := make(chan bool)
		go func() {
			scheduler.Run(context.Background(), time.Millisecond)
			done <- true
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after quit")
		}
		assert.Equal(t, 3, frames)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newPlayingEngine())
		drop := &DropSystem{}
		scheduler.Register(drop)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if drop.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}
