package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/loop"
)

type scriptRandomizer struct {
	kinds []engine.Kind
	drawn int
}

func (s *scriptRandomizer) Next() engine.Kind {
	kind := s.kinds[s.drawn%len(s.kinds)]
	s.drawn++
	return kind
}

// clearOneLine plays I, I, O so the bottom row fills exactly once.
func clearOneLine(t *testing.T, e *engine.Engine) {
	t.Helper()
	require.True(t, e.MovePiece(-3, 0))
	e.HardDrop()
	require.True(t, e.MovePiece(3, 0))
	e.HardDrop()
	e.HardDrop()
	require.Equal(t, 100, e.Score())
}

func TestHUD(t *testing.T) {
	e := engine.New(engine.WithRandomizer(&scriptRandomizer{kinds: []engine.Kind{engine.I, engine.I, engine.O}}))
	e.HandleTitleInput(engine.TitleConfirm)

	hud := &HUD{}
	frame := &loop.UpdateFrame{Engine: e, Commands: &loop.Commands{}}

	hud.Execute(frame)
	assert.Equal(t, 0, hud.Score())
	assert.Equal(t, float32(0), hud.Flash())

	clearOneLine(t, e)

	frame.DeltaTime = 0
	hud.Execute(frame)
	assert.Equal(t, 0, hud.Score())
	assert.Equal(t, float32(1), hud.Flash())

	frame.DeltaTime = 0.2
	hud.Execute(frame)
	assert.Greater(t, hud.Score(), 0)
	assert.Less(t, hud.Score(), 100)
	assert.Greater(t, hud.Flash(), float32(0))
	assert.Less(t, hud.Flash(), float32(1))

	frame.DeltaTime = 1
	hud.Execute(frame)
	assert.Equal(t, 100, hud.Score())
	assert.Equal(t, float32(0), hud.Flash())

	e.Restart()
	hud.Execute(frame)
	assert.Equal(t, 0, hud.Score())
}

func TestHUDIgnoresLocksWithoutClears(t *testing.T) {
	e := engine.New(engine.WithRandomizer(&scriptRandomizer{kinds: []engine.Kind{engine.T}}))
	e.HandleTitleInput(engine.TitleConfirm)

	hud := &HUD{}
	frame := &loop.UpdateFrame{Engine: e, Commands: &loop.Commands{}}
	hud.Execute(frame)

	e.HardDrop()
	hud.Execute(frame)
	assert.Equal(t, float32(0), hud.Flash())
	assert.Equal(t, 0, hud.Score())
}

func TestRepeatTriggered(t *testing.T) {
	tests := []struct {
		frames int
		want   bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
		{repeatDelay + 2*repeatInterval, true},
	}

	for _, tt := range tests {
		if got := repeatTriggered(tt.frames); got != tt.want {
			t.Errorf("repeatTriggered(%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}
}
