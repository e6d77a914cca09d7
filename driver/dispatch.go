package driver

import "github.com/plus3/tetrust/engine"

// Action is a host-side effect requested by an input.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionOpenLink
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionOpenLink:
		return "open-link"
	default:
		return "none"
	}
}

// Dispatch applies key to e according to the current screen and returns the
// host action it requires. Keys that mean nothing on the current screen are
// ignored.
func Dispatch(e *engine.Engine, key Key) Action {
	switch e.Screen().(type) {
	case engine.TitleScreen:
		return dispatchTitle(e, key)
	case engine.Playing:
		return dispatchPlaying(e, key)
	case engine.Paused:
		switch key {
		case KeyPause:
			e.TogglePause()
		case KeyQuit:
			return ActionQuit
		}
	case engine.GameOver:
		switch key {
		case KeyRestart:
			e.Restart()
		case KeyQuit:
			return ActionQuit
		}
	}
	return ActionNone
}

func dispatchTitle(e *engine.Engine, key Key) Action {
	var titleKey engine.TitleKey
	switch key {
	case KeyUp:
		titleKey = engine.TitleUp
	case KeyDown:
		titleKey = engine.TitleDown
	case KeyConfirm:
		titleKey = engine.TitleConfirm
	default:
		return ActionNone
	}

	switch e.HandleTitleInput(titleKey) {
	case engine.TitleActionOpenLink:
		return ActionOpenLink
	case engine.TitleActionQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}

func dispatchPlaying(e *engine.Engine, key Key) Action {
	switch key {
	case KeyLeft:
		e.MovePiece(-1, 0)
	case KeyRight:
		e.MovePiece(1, 0)
	case KeyDown:
		e.MovePiece(0, 1)
	case KeyUp, KeyRotateCW:
		e.Rotate(true)
	case KeyRotateCCW:
		e.Rotate(false)
	case KeyHardDrop:
		e.HardDrop()
	case KeyHold:
		e.HoldPiece()
	case KeyPause:
		e.TogglePause()
	case KeyRestart:
		e.Restart()
	case KeyQuit:
		return ActionQuit
	}
	return ActionNone
}
