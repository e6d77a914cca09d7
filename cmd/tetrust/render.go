package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetrust/engine"
)

const (
	ScreenWidth  = 520
	ScreenHeight = 620

	cellSize   = 24
	boardX     = 40
	boardY     = 60
	boardW     = engine.Width * cellSize
	boardH     = engine.Height * cellSize
	previewX   = boardX + boardW + 30
	previewBox = engine.MaskSize*cellSize + 8

	// ebitenutil's debug font cell.
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	filledColor     = color.RGBA{0, 200, 255, 255}
	previewColor    = color.RGBA{90, 90, 140, 255}
	frameColor      = color.RGBA{200, 200, 210, 255}
)

func textCentered(screen *ebiten.Image, s string, y int) {
	ebitenutil.DebugPrintAt(screen, s, (ScreenWidth-len([]rune(s))*glyphW)/2, y)
}

func drawTitle(screen *ebiten.Image, selected int) {
	y := ScreenHeight / 3
	for _, line := range []string{"---------------", "   Tet-Rust!   ", "---------------"} {
		textCentered(screen, line, y)
		y += glyphH
	}

	y += glyphH
	for i, label := range engine.MenuLabels {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		textCentered(screen, marker+label+"  ", y)
		y += glyphH
	}
}

func drawHelp(screen *ebiten.Image) {
	y := (ScreenHeight - len(engine.HelpLines)*glyphH) / 2
	for _, line := range engine.HelpLines {
		textCentered(screen, line, y)
		y += glyphH
	}
}

func drawCell(screen *ebiten.Image, x, y float32, cell engine.Cell) {
	switch cell {
	case engine.Filled:
		vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, filledColor, false)
	case engine.Preview:
		vector.StrokeRect(screen, x+2, y+2, cellSize-4, cellSize-4, 2, previewColor, false)
	default:
		vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, gridColor, false)
	}
}

func drawPiecePreview(screen *ebiten.Image, piece engine.Piece, x, y int, title string) {
	ebitenutil.DebugPrintAt(screen, title, x, y-glyphH-2)
	vector.StrokeRect(screen, float32(x), float32(y), previewBox, previewBox, 1, frameColor, false)
	for row, col := range piece.Mask.Cells() {
		drawCell(screen, float32(x+4+col*cellSize), float32(y+4+row*cellSize), engine.Filled)
	}
}

func drawGame(screen *ebiten.Image, e *engine.Engine, hud *HUD, over bool) {
	board := e.RenderBoard()
	for y := range engine.Height {
		for x := range engine.Width {
			drawCell(screen, float32(boardX+x*cellSize), float32(boardY+y*cellSize), board.Get(x, y))
		}
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, boardW+2, boardH+2, 1, frameColor, false)

	if flash := hud.Flash(); flash > 0 {
		alpha := uint8(flash * 160)
		vector.DrawFilledRect(screen, boardX, boardY, boardW, boardH, color.RGBA{alpha, alpha, alpha, alpha}, false)
	}

	drawPiecePreview(screen, e.Next(), previewX, boardY+glyphH, "NEXT")
	if kind, ok := e.Held(); ok {
		drawPiecePreview(screen, engine.NewPiece(kind), previewX, boardY+previewBox+3*glyphH, "HOLD")
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", hud.Score()), boardX, boardY+boardH+10)

	if over {
		ebitenutil.DebugPrintAt(screen, "Game Over!", boardX, boardY+boardH+10+glyphH)
		ebitenutil.DebugPrintAt(screen, "Press 'r' to restart or 'q' to quit", boardX, boardY+boardH+10+2*glyphH)
	}
}

// draw renders the engine's current screen.
func draw(screen *ebiten.Image, e *engine.Engine, hud *HUD) {
	screen.Fill(backgroundColor)

	switch s := e.Screen().(type) {
	case engine.TitleScreen:
		drawTitle(screen, s.Selected)
	case engine.Paused:
		drawHelp(screen)
	case engine.Playing:
		drawGame(screen, e, hud, false)
	case engine.GameOver:
		drawGame(screen, e, hud, true)
	}
}
