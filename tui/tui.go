// Package tui draws the game onto a tcell screen and maps tcell key events
// to logical driver keys.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetrust/driver"
	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
)

const (
	previewPadding = 2
	cellWidth      = 2
)

var logo = []string{
	"---------------",
	"   Tet-Rust!   ",
	"---------------",
}

// Styles holds the colours used for each kind of screen content.
type Styles struct {
	Text    tcell.Style
	Filled  tcell.Style
	Preview tcell.Style
	Empty   tcell.Style
	Alert   tcell.Style
}

func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Text:    base,
		Filled:  base.Foreground(tcell.NewRGBColor(0, 200, 255)),
		Preview: base.Foreground(tcell.NewRGBColor(90, 90, 140)),
		Empty:   base.Foreground(tcell.NewRGBColor(60, 60, 60)),
		Alert:   base.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Renderer draws engine state through the engine's query methods only.
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, styles: DefaultStyles()}
}

// Execute draws the frame's engine; it lets a Renderer run as a loop system.
func (r *Renderer) Execute(frame *loop.UpdateFrame) {
	r.Draw(frame.Engine)
}

// Draw clears the screen, renders the current engine screen and shows it.
func (r *Renderer) Draw(e *engine.Engine) {
	r.screen.Clear()
	width, height := r.screen.Size()

	switch s := e.Screen().(type) {
	case engine.TitleScreen:
		r.drawTitle(s.Selected, width, height)
	case engine.Paused:
		r.drawHelp(width, height)
	case engine.Playing:
		r.drawGame(e, width, height, false)
	case engine.GameOver:
		r.drawGame(e, width, height, true)
	}

	r.screen.Show()
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

func centered(total, length int) int {
	return max((total-length)/2, 0)
}

func (r *Renderer) drawTitle(selected, width, height int) {
	startY := height / 3
	for i, line := range logo {
		r.text(centered(width, len(line)), startY+i, line, r.styles.Text)
	}

	for i, label := range engine.MenuLabels {
		marker := " "
		if i == selected {
			marker = ">"
		}
		line := marker + " " + label
		r.text(centered(width, len(label)+4), startY+len(logo)+1+i, line, r.styles.Text)
	}
}

func (r *Renderer) drawHelp(width, height int) {
	startY := centered(height, len(engine.HelpLines))
	for i, line := range engine.HelpLines {
		r.text(centered(width, len([]rune(line))), startY+i, line, r.styles.Text)
	}
}

func (r *Renderer) cell(x, y int, cell engine.Cell) {
	var glyph rune
	var style tcell.Style
	switch cell {
	case engine.Filled:
		glyph, style = '█', r.styles.Filled
	case engine.Preview:
		glyph, style = '░', r.styles.Preview
	default:
		glyph, style = '·', r.styles.Empty
	}
	r.screen.SetContent(x, y, glyph, nil, style)
	r.screen.SetContent(x+1, y, glyph, nil, style)
}

func (r *Renderer) drawGame(e *engine.Engine, width, height int, over bool) {
	boardWidth := engine.Width * cellWidth
	startX := centered(width, boardWidth)
	startY := centered(height, engine.Height)

	board := e.RenderBoard()
	for y := range engine.Height {
		for x := range engine.Width {
			r.cell(startX+x*cellWidth, startY+y, board.Get(x, y))
		}
	}

	previewX := startX + boardWidth + previewPadding
	r.drawPiecePreview(e.Next(), previewX, startY, "NEXT")
	if kind, ok := e.Held(); ok {
		r.drawPiecePreview(engine.NewPiece(kind), previewX, startY+engine.MaskSize+3, "HOLD")
	}

	score := fmt.Sprintf("Score: %d", e.Score())
	r.text(startX+centered(boardWidth, len(score)), startY+engine.Height+1, score, r.styles.Text)

	if over {
		gameOver := "Game Over!"
		restart := "Press 'r' to restart or 'q' to quit"
		r.text(startX+centered(boardWidth, len(gameOver)), startY+engine.Height+2, gameOver, r.styles.Alert)
		r.text(max(startX+(boardWidth-len(restart))/2, 0), startY+engine.Height+3, restart, r.styles.Text)
	}
}

func (r *Renderer) drawPiecePreview(piece engine.Piece, x, y int, title string) {
	inner := engine.MaskSize * cellWidth

	r.screen.SetContent(x, y, '┌', nil, r.styles.Text)
	for i := range inner {
		r.screen.SetContent(x+1+i, y, '─', nil, r.styles.Text)
	}
	r.screen.SetContent(x+1+inner, y, '┐', nil, r.styles.Text)
	r.text(x+1, y, " "+title+" ", r.styles.Text)

	for row := range engine.MaskSize {
		r.screen.SetContent(x, y+1+row, '│', nil, r.styles.Text)
		for col := range engine.MaskSize {
			cell := engine.Empty
			if piece.Mask[row][col] {
				cell = engine.Filled
			}
			r.cell(x+1+col*cellWidth, y+1+row, cell)
		}
		r.screen.SetContent(x+1+inner, y+1+row, '│', nil, r.styles.Text)
	}

	bottom := y + engine.MaskSize + 1
	r.screen.SetContent(x, bottom, '└', nil, r.styles.Text)
	for i := range inner {
		r.screen.SetContent(x+1+i, bottom, '─', nil, r.styles.Text)
	}
	r.screen.SetContent(x+1+inner, bottom, '┘', nil, r.styles.Text)
}

// KeyFromEvent maps a tcell key event to a logical key.
func KeyFromEvent(ev *tcell.EventKey) driver.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return driver.KeyLeft
	case tcell.KeyRight:
		return driver.KeyRight
	case tcell.KeyDown:
		return driver.KeyDown
	case tcell.KeyUp:
		return driver.KeyUp
	case tcell.KeyEnter:
		return driver.KeyConfirm
	case tcell.KeyEscape:
		return driver.KeyPause
	case tcell.KeyCtrlC:
		return driver.KeyQuit
	case tcell.KeyRune:
		return driver.KeyForRune(ev.Rune())
	default:
		return driver.KeyNone
	}
}

// Pump forwards key events from screen to queue until the screen is
// finalized. It is meant to run on its own goroutine.
func Pump(screen tcell.Screen, queue *driver.KeyQueue) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if key := KeyFromEvent(ev); key != driver.KeyNone {
				queue.Push(key)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
