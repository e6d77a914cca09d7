package engine

import "fmt"

// Screen is the active top-level state. Exactly one variant is current:
// TitleScreen, Playing, Paused or GameOver.
type Screen interface {
	fmt.Stringer
	isScreen()
}

// TitleScreen is the start menu. Selected is an index into MenuLabels.
type TitleScreen struct {
	Selected int
}

type Playing struct{}

// Paused doubles as the controls/help screen.
type Paused struct{}

type GameOver struct{}

func (TitleScreen) isScreen() {}
func (Playing) isScreen()     {}
func (Paused) isScreen()      {}
func (GameOver) isScreen()    {}

func (s TitleScreen) String() string { return fmt.Sprintf("title(%d)", s.Selected) }
func (Playing) String() string       { return "playing" }
func (Paused) String() string        { return "paused" }
func (GameOver) String() string      { return "game-over" }

const (
	MenuPlay = iota
	MenuHelp
	MenuLink
	MenuQuit
	MenuOptions
)

// MenuLabels are the title menu entries, indexed by TitleScreen.Selected.
var MenuLabels = [MenuOptions]string{"Play", "Help", "GitHub", "Quit"}

// HelpLines is the controls text shown on the Paused screen.
var HelpLines = []string{
	"Controls:",
	"←/→: Move piece",
	"A: Rotate clockwise",
	"D: Rotate anti-clockwise",
	"↓: Soft drop",
	"Space: Hard drop",
	"C: Hold piece",
	"Esc/P: Pause/Unpause",
	"R: Restart game",
	"Q: Quit game",
	"",
	"Press Esc or P to resume",
}

// TitleKey is a logical title-menu input.
type TitleKey uint8

const (
	TitleUp TitleKey = iota
	TitleDown
	TitleConfirm
)

// TitleAction is a side effect the host must perform after a title input.
type TitleAction uint8

const (
	TitleActionNone TitleAction = iota
	TitleActionOpenLink
	TitleActionQuit
)

func (a TitleAction) String() string {
	switch a {
	case TitleActionOpenLink:
		return "open-link"
	case TitleActionQuit:
		return "quit"
	default:
		return "none"
	}
}
