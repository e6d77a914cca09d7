// Package autoplay is a placement-search player. It reads the engine through
// its queries and plays only through the engine's command API, so every move
// it makes is one a human could make with the same keys.
package autoplay

import (
	"math"

	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
)

// Weights scale the board features used to rank placements. Positive
// weights reward a feature, negative ones penalise it.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights are a well known hand-tuned set for a 10-wide board.
var DefaultWeights = Weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// Placement is a reachable resting position for the active piece.
type Placement struct {
	Rotations int
	X, Y      int
	Score     float64
}

// Features describe a board after a placement has been locked and its full
// rows cleared.
type Features struct {
	AggregateHeight int
	Lines           int
	Holes           int
	Bumpiness       int
}

func (w Weights) score(f Features) float64 {
	return w.Height*float64(f.AggregateHeight) +
		w.Lines*float64(f.Lines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// Evaluate measures board.
func Evaluate(board *engine.Board, lines int) Features {
	f := Features{Lines: lines}

	var heights [engine.Width]int
	for x := range engine.Width {
		covered := false
		for y := range engine.Height {
			switch board.Get(x, y) {
			case engine.Filled:
				if !covered {
					heights[x] = engine.Height - y
					covered = true
				}
			default:
				if covered {
					f.Holes++
				}
			}
		}
		f.AggregateHeight += heights[x]
	}

	for x := 1; x < engine.Width; x++ {
		d := heights[x] - heights[x-1]
		if d < 0 {
			d = -d
		}
		f.Bumpiness += d
	}
	return f
}

// lock writes mask onto a copy of board and clears full rows the same way
// the engine does.
func lock(board engine.Board, mask *engine.Mask, x, y int) (engine.Board, int) {
	for row, col := range mask.Cells() {
		bx, by := x+col, y+row
		if bx >= 0 && bx < engine.Width && by >= 0 && by < engine.Height {
			board.Set(bx, by, engine.Filled)
		}
	}

	lines := 0
	for row := engine.Height - 1; row >= 0; {
		if board.RowFull(row) {
			board.ClearLine(row)
			lines++
			continue
		}
		row--
	}
	return board, lines
}

// pathClear reports whether mask can slide horizontally from fromX to toX
// on row y.
func pathClear(board *engine.Board, mask *engine.Mask, fromX, toX, y int) bool {
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX; x != toX; x += step {
		if engine.Collides(board, mask, x+step, y) {
			return false
		}
	}
	return true
}

// Best finds the highest scoring placement of piece anchored at (x, y). Only
// placements reachable by rotating in place, sliding sideways and dropping
// are considered. It reports false when no placement exists.
func Best(board engine.Board, piece engine.Piece, x, y int, w Weights) (Placement, bool) {
	best := Placement{Score: math.Inf(-1)}
	found := false

	for rotations := range 4 {
		if rotations > 0 {
			piece.RotateClockwise()
			if engine.Collides(&board, &piece.Mask, x, y) {
				break
			}
		} else if engine.Collides(&board, &piece.Mask, x, y) {
			break
		}

		for targetX := -engine.MaskSize + 1; targetX < engine.Width; targetX++ {
			if engine.Collides(&board, &piece.Mask, targetX, y) {
				continue
			}
			if !pathClear(&board, &piece.Mask, x, targetX, y) {
				continue
			}

			landY := y
			for !engine.Collides(&board, &piece.Mask, targetX, landY+1) {
				landY++
			}

			after, lines := lock(board, &piece.Mask, targetX, landY)
			score := w.score(Evaluate(&after, lines))
			if !found || score > best.Score {
				best = Placement{Rotations: rotations, X: targetX, Y: landY, Score: score}
				found = true
			}
		}
	}
	return best, found
}

// Play places the active piece at its best position using Rotate, MovePiece
// and HardDrop. When no placement is reachable the piece is dropped where it
// is. It reports whether a planned placement was used.
func Play(e *engine.Engine, w Weights) bool {
	x, y := e.Anchor()
	placement, ok := Best(e.Board(), e.Active(), x, y, w)
	if !ok {
		e.HardDrop()
		return false
	}

	for range placement.Rotations {
		e.Rotate(true)
	}
	for x != placement.X {
		step := 1
		if placement.X < x {
			step = -1
		}
		if !e.MovePiece(step, 0) {
			break
		}
		x += step
	}
	e.HardDrop()
	return true
}

// GameResult summarises one finished game.
type GameResult struct {
	Score  int
	Lines  int
	Pieces int
}

// Player is a loop system that places one piece per frame while playing. It
// starts games from the title screen and restarts finished ones until Games
// results have been collected, then requests quit.
type Player struct {
	Weights Weights
	// Games is the number of games to play; zero plays forever.
	Games int
	// MaxPieces ends a game early once this many pieces were placed; zero
	// means no limit.
	MaxPieces int
	// OnGame is called after every finished game.
	OnGame  func(GameResult)
	Results []GameResult
}

func (p *Player) Execute(frame *loop.UpdateFrame) {
	e := frame.Engine

	switch e.Screen().(type) {
	case engine.TitleScreen:
		for {
			if title := e.Screen().(engine.TitleScreen); title.Selected == engine.MenuPlay {
				break
			}
			e.HandleTitleInput(engine.TitleUp)
		}
		e.HandleTitleInput(engine.TitleConfirm)
	case engine.Paused:
		e.TogglePause()
	case engine.Playing:
		Play(e, p.Weights)
		if p.MaxPieces > 0 && e.Stats().Locks >= p.MaxPieces {
			p.finish(frame)
		}
	case engine.GameOver:
		p.finish(frame)
	}
}

func (p *Player) finish(frame *loop.UpdateFrame) {
	e := frame.Engine
	stats := e.Stats()
	result := GameResult{Score: e.Score(), Lines: stats.Lines, Pieces: stats.Locks}

	p.Results = append(p.Results, result)
	if p.OnGame != nil {
		p.OnGame(result)
	}

	if p.Games > 0 && len(p.Results) >= p.Games {
		frame.Commands.Quit()
		return
	}
	e.Restart()
}
