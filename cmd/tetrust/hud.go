package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/plus3/tetrust/loop"
)

const (
	scoreTweenSeconds = 0.4
	flashTweenSeconds = 0.3
)

// HUD animates the displayed score towards the engine score and flashes the
// board when a lock clears lines.
type HUD struct {
	score      float32
	scoreTween *gween.Tween
	target     int

	flash      float32
	flashTween *gween.Tween
	locks      int
}

// Score is the score to display this frame.
func (h *HUD) Score() int {
	return int(h.score + 0.5)
}

// Flash is the line-clear flash intensity in [0, 1].
func (h *HUD) Flash() float32 {
	return h.flash
}

func (h *HUD) Execute(frame *loop.UpdateFrame) {
	e := frame.Engine
	dt := float32(frame.DeltaTime)

	switch score := e.Score(); {
	case score < h.target:
		// Restart drops the score; snap rather than count down.
		h.target, h.score, h.scoreTween = score, float32(score), nil
	case score > h.target:
		h.target = score
		h.scoreTween = gween.New(h.score, float32(score), scoreTweenSeconds, ease.OutQuad)
	}

	stats := e.Stats()
	if stats.Locks != h.locks {
		if stats.Locks > h.locks && stats.LastClear > 0 {
			h.flashTween = gween.New(1, 0, flashTweenSeconds, ease.OutQuad)
		}
		h.locks = stats.Locks
	}

	if h.scoreTween != nil {
		value, done := h.scoreTween.Update(dt)
		h.score = value
		if done {
			h.score, h.scoreTween = float32(h.target), nil
		}
	}

	if h.flashTween != nil {
		value, done := h.flashTween.Update(dt)
		h.flash = value
		if done {
			h.flash, h.flashTween = 0, nil
		}
	}
}
