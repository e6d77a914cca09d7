// Package driver translates logical player input into engine commands and
// applies gravity on a fixed interval. Front-ends map their native key
// events to Key values and feed them through a KeyQueue.
package driver

// Key is a logical, front-end independent input.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeyRotateCW
	KeyRotateCCW
	KeyHardDrop
	KeyHold
	KeyPause
	KeyRestart
	KeyQuit
	KeyConfirm
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyRotateCW:  "rotate-cw",
	KeyRotateCCW: "rotate-ccw",
	KeyHardDrop:  "hard-drop",
	KeyHold:      "hold",
	KeyPause:     "pause",
	KeyRestart:   "restart",
	KeyQuit:      "quit",
	KeyConfirm:   "confirm",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyForRune maps the letter and space bindings shared by every front-end.
func KeyForRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyRotateCW
	case 'd', 'D':
		return KeyRotateCCW
	case ' ':
		return KeyHardDrop
	case 'c', 'C':
		return KeyHold
	case 'p', 'P':
		return KeyPause
	case 'r', 'R':
		return KeyRestart
	case 'q', 'Q':
		return KeyQuit
	default:
		return KeyNone
	}
}
