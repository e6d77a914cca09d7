package driver

import (
	"go.uber.org/zap"

	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
)

// InputSystem drains the key queue and dispatches every key to the engine.
// Host actions are turned into frame commands.
type InputSystem struct {
	Queue *KeyQueue
	// OpenLink performs the title menu's link entry. Nil disables it.
	OpenLink func() error
	Logger   *zap.Logger
}

func (s *InputSystem) logger() *zap.Logger {
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s.Logger
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	log := s.logger()

	for _, key := range s.Queue.Drain() {
		before := frame.Engine.Screen()
		action := Dispatch(frame.Engine, key)
		after := frame.Engine.Screen()

		if before != after {
			log.Debug("screen transition",
				zap.String("key", key.String()),
				zap.Stringer("from", before),
				zap.Stringer("to", after),
				zap.Int("score", frame.Engine.Score()),
			)
		}

		switch action {
		case ActionQuit:
			log.Info("quit requested", zap.Stringer("screen", after))
			frame.Commands.Quit()
			return
		case ActionOpenLink:
			if s.OpenLink == nil {
				continue
			}
			open := s.OpenLink
			frame.Commands.Defer(func() {
				if err := open(); err != nil {
					log.Warn("open link failed", zap.Error(err))
				}
			})
		}
	}
}

// GravitySystem moves the active piece down once per clock interval while
// playing, locking it when it cannot fall.
type GravitySystem struct {
	Clock *GravityClock
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if _, playing := frame.Engine.Screen().(engine.Playing); !playing {
		s.Clock.Reset(frame.Now)
		return
	}

	if !s.Clock.Due(frame.Now) {
		return
	}
	if !frame.Engine.MovePiece(0, 1) {
		frame.Engine.LockPiece()
	}
}
