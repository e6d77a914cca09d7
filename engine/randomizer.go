package engine

import (
	"math/rand/v2"
	"time"
)

// Randomizer supplies the identity of each newly drawn piece.
type Randomizer interface {
	Next() Kind
}

func newSource(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// UniformRandomizer draws every piece independently and uniformly from the
// seven kinds. Immediate repeats are possible.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer uses rng for draws, or a time-seeded source when rng
// is nil.
func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: newSource(rng)}
}

func (r *UniformRandomizer) Next() Kind {
	return Kinds[r.rng.IntN(len(Kinds))]
}

// BagRandomizer deals the seven kinds in shuffled batches so every kind
// appears exactly once per seven draws.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	return &BagRandomizer{rng: newSource(rng), bag: make([]Kind, 0, len(Kinds))}
}

func (r *BagRandomizer) Next() Kind {
	if len(r.bag) == 0 {
		r.bag = append(r.bag, Kinds[:]...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}

	kind := r.bag[0]
	r.bag = r.bag[1:]
	return kind
}
