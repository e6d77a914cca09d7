// Package engine implements a falling-block puzzle game: the board, the seven
// piece shapes, collision, locking, line clearing, scoring, the hold slot and
// the screen state machine.
//
// The engine performs no I/O and never blocks. A host drives it by calling
// commands (MovePiece, Rotate, HardDrop, ...) and a periodic gravity step, and
// renders it through the query methods. An Engine must be used from a single
// goroutine.
package engine

// Spawn anchor of every new active piece.
const (
	SpawnX = Width/2 - 2
	SpawnY = 0
)

// Engine owns the board, the active/next/held pieces, the score and the
// current screen.
type Engine struct {
	board   Board
	active  Piece
	next    Piece
	x, y    int
	held    Kind
	hasHeld bool
	canHold bool
	score   int
	screen  Screen
	rand    Randomizer
	stats   statsTracker
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRandomizer replaces the default uniform randomizer.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// New creates an engine on the title screen with its first piece spawned.
func New(opts ...Option) *Engine {
	e := &Engine{
		screen: TitleScreen{},
		stats:  newStatsTracker(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = NewUniformRandomizer(nil)
	}

	e.next = NewPiece(e.rand.Next())
	e.SpawnPiece()
	return e
}

// Collides reports whether mask anchored at (x, y) leaves the left, right or
// bottom edge of board or overlaps a Filled cell. Cells above row 0 only
// collide with the side walls.
func Collides(board *Board, mask *Mask, x, y int) bool {
	for row, col := range mask.Cells() {
		bx, by := x+col, y+row
		if bx < 0 || bx >= Width || by >= Height {
			return true
		}
		if by >= 0 && board.Get(bx, by) == Filled {
			return true
		}
	}
	return false
}

// WouldCollide reports whether the active piece would collide if anchored at
// (x, y).
func (e *Engine) WouldCollide(x, y int) bool {
	return Collides(&e.board, &e.active.Mask, x, y)
}

func (e *Engine) collides() bool {
	return e.WouldCollide(e.x, e.y)
}

// SpawnPiece promotes the next piece to active, draws a new next piece and
// resets the anchor and the hold slot. A spawn that collides ends the game.
func (e *Engine) SpawnPiece() {
	e.active = e.next
	e.next = NewPiece(e.rand.Next())
	e.x, e.y = SpawnX, SpawnY
	e.canHold = true
	e.stats.recordSpawn(e.active.Kind)

	if e.collides() {
		e.screen = GameOver{}
	}
}

// MovePiece shifts the active piece by (dx, dy). It reports false and leaves
// the anchor untouched when the destination collides.
func (e *Engine) MovePiece(dx, dy int) bool {
	e.x += dx
	e.y += dy

	if e.collides() {
		e.x -= dx
		e.y -= dy
		return false
	}
	return true
}

// Rotate turns the active piece in place. A rotation that collides is undone
// completely; no alternative positions are tried.
func (e *Engine) Rotate(clockwise bool) {
	mask, x, y := e.active.Mask, e.x, e.y

	if clockwise {
		e.active.RotateClockwise()
	} else {
		e.active.RotateAnticlockwise()
	}

	if e.collides() {
		e.active.Mask = mask
		e.x, e.y = x, y
	}
}

// HardDrop moves the active piece down until it rests, then locks it.
func (e *Engine) HardDrop() {
	for e.MovePiece(0, 1) {
	}
	e.LockPiece()
}

// LockPiece writes the active piece onto the board, clears full rows, adds
// the line score and spawns the next piece.
func (e *Engine) LockPiece() {
	for row, col := range e.active.Mask.Cells() {
		bx, by := e.x+col, e.y+row
		if inBounds(bx, by) {
			e.board.Set(bx, by, Filled)
		}
	}

	cleared := e.clearLines()
	e.score += LineScore(cleared)
	e.stats.recordLock(cleared)

	e.SpawnPiece()
}

// clearLines scans bottom to top. A cleared row is re-examined because the
// row above has just shifted into it.
func (e *Engine) clearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if e.board.RowFull(y) {
			e.board.ClearLine(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

// HoldPiece stashes the active piece's identity. If a piece was already held
// it becomes active in its spawn orientation; otherwise a new piece is
// spawned from the randomizer. Holding is disabled until the next spawn.
func (e *Engine) HoldPiece() {
	if !e.canHold {
		return
	}

	current := e.active.Kind
	if e.hasHeld {
		e.active = NewPiece(e.held)
	} else {
		e.SpawnPiece()
	}

	e.held, e.hasHeld = current, true
	e.x, e.y = SpawnX, SpawnY
	e.canHold = false
}

// TogglePause switches between Playing and Paused. Other screens are left
// alone.
func (e *Engine) TogglePause() {
	switch e.screen.(type) {
	case Playing:
		e.screen = Paused{}
	case Paused:
		e.screen = Playing{}
	}
}

// Restart begins a fresh game on the Playing screen.
func (e *Engine) Restart() {
	e.board.Reset()
	e.score = 0
	e.screen = Playing{}
	e.held, e.hasHeld = 0, false
	e.canHold = true
	e.stats = newStatsTracker()
	e.SpawnPiece()
}

// HandleTitleInput applies a menu input while on the title screen and returns
// the side effect, if any, the host should carry out. It is a no-op on every
// other screen.
func (e *Engine) HandleTitleInput(key TitleKey) TitleAction {
	title, ok := e.screen.(TitleScreen)
	if !ok {
		return TitleActionNone
	}

	switch key {
	case TitleUp:
		title.Selected = (title.Selected + MenuOptions - 1) % MenuOptions
		e.screen = title
	case TitleDown:
		title.Selected = (title.Selected + 1) % MenuOptions
		e.screen = title
	case TitleConfirm:
		switch title.Selected {
		case MenuPlay:
			e.screen = Playing{}
		case MenuHelp:
			e.screen = Paused{}
		case MenuLink:
			return TitleActionOpenLink
		case MenuQuit:
			return TitleActionQuit
		}
	}
	return TitleActionNone
}

func (e *Engine) Screen() Screen {
	return e.screen
}

// Board returns a copy of the authoritative board.
func (e *Engine) Board() Board {
	return e.board
}

// Active returns a copy of the falling piece.
func (e *Engine) Active() Piece {
	return e.active
}

// Anchor returns the board position of the active piece's top-left mask cell.
func (e *Engine) Anchor() (x, y int) {
	return e.x, e.y
}

func (e *Engine) Next() Piece {
	return e.next
}

// Held returns the held identity and whether one is held.
func (e *Engine) Held() (Kind, bool) {
	return e.held, e.hasHeld
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) CanHold() bool {
	return e.canHold
}

func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}

// LandingRow returns the lowest anchor row the active piece can reach by
// falling straight down from its current position.
func (e *Engine) LandingRow() int {
	y := e.y
	for !e.WouldCollide(e.x, y+1) {
		y++
	}
	return y
}

// RenderBoard returns a disposable copy of the board with the landing
// preview drawn as Preview and the active piece drawn as Filled.
func (e *Engine) RenderBoard() Board {
	board := e.board
	landing := e.LandingRow()

	for row, col := range e.active.Mask.Cells() {
		bx, by := e.x+col, landing+row
		if inBounds(bx, by) && board.Get(bx, by) == Empty {
			board.Set(bx, by, Preview)
		}
	}
	for row, col := range e.active.Mask.Cells() {
		bx, by := e.x+col, e.y+row
		if inBounds(bx, by) {
			board.Set(bx, by, Filled)
		}
	}
	return board
}
