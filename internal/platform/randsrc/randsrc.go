package randsrc

import (
	"math/rand"
	"time"
)

// Source abstracts randomness so sampling stays deterministic in tests.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type MathRand struct {
	rng *rand.Rand
}

func NewMathRand() MathRand {
	return MathRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m MathRand) Intn(n int) int                     { return m.rng.Intn(n) }
func (m MathRand) Shuffle(n int, swap func(i, j int)) { m.rng.Shuffle(n, swap) }
