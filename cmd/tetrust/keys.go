package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetrust/driver"
)

// Held movement keys repeat after repeatDelay ticks, then every
// repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

type binding struct {
	key     ebiten.Key
	logical driver.Key
	repeat  bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, driver.KeyLeft, true},
	{ebiten.KeyArrowRight, driver.KeyRight, true},
	{ebiten.KeyArrowDown, driver.KeyDown, true},
	{ebiten.KeyArrowUp, driver.KeyUp, false},
	{ebiten.KeyA, driver.KeyRotateCW, false},
	{ebiten.KeyD, driver.KeyRotateCCW, false},
	{ebiten.KeySpace, driver.KeyHardDrop, false},
	{ebiten.KeyC, driver.KeyHold, false},
	{ebiten.KeyP, driver.KeyPause, false},
	{ebiten.KeyEscape, driver.KeyPause, false},
	{ebiten.KeyR, driver.KeyRestart, false},
	{ebiten.KeyQ, driver.KeyQuit, false},
	{ebiten.KeyEnter, driver.KeyConfirm, false},
}

// repeatTriggered reports whether a key held for frames ticks should fire
// on this tick.
func repeatTriggered(frames int) bool {
	if frames == 1 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// pollKeys pushes this tick's key presses onto queue.
func pollKeys(queue *driver.KeyQueue) {
	for _, b := range bindings {
		if b.repeat {
			if repeatTriggered(inpututil.KeyPressDuration(b.key)) {
				queue.Push(b.logical)
			}
			continue
		}
		if inpututil.IsKeyJustPressed(b.key) {
			queue.Push(b.logical)
		}
	}
}
