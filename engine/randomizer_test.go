package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptRandomizer replays kinds in order, cycling when exhausted.
type scriptRandomizer struct {
	kinds []Kind
	drawn int
}

func (s *scriptRandomizer) Next() Kind {
	kind := s.kinds[s.drawn%len(s.kinds)]
	s.drawn++
	return kind
}

func TestUniformRandomizerCoversAllKinds(t *testing.T) {
	r := NewUniformRandomizer(rand.New(rand.NewPCG(1, 2)))

	seen := make(map[Kind]int)
	for range 700 {
		kind := r.Next()
		assert.Less(t, int(kind), len(Kinds))
		seen[kind]++
	}
	assert.Len(t, seen, len(Kinds))
}

func TestUniformRandomizerIsSeeded(t *testing.T) {
	a := NewUniformRandomizer(rand.New(rand.NewPCG(7, 7)))
	b := NewUniformRandomizer(rand.New(rand.NewPCG(7, 7)))
	for range 50 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestBagRandomizerDealsEveryKindPerBag(t *testing.T) {
	r := NewBagRandomizer(rand.New(rand.NewPCG(3, 4)))

	for bag := range 5 {
		seen := make(map[Kind]bool)
		for range len(Kinds) {
			seen[r.Next()] = true
		}
		assert.Len(t, seen, len(Kinds), "bag %d", bag)
	}
}

func TestNilSourceRandomizers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewUniformRandomizer(nil).Next()
		NewBagRandomizer(nil).Next()
	})
}
