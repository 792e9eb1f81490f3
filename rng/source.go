package rng

import (
	"math/rand"
	"time"
)

// Source is the PRNG capability every engine owns exclusively (spec
// §5: "the PRNG is owned by the engine and must not be shared across
// engines without explicit duplication").
type Source interface {
	// Float64 returns a pseudo-random number in [0,1).
	Float64() float64
	// Seed reseeds the source deterministically.
	Seed(seed int64)
}

// mathRand adapts math/rand.Rand to the Source interface.
type mathRand struct {
	r *rand.Rand
}

// NewDeterministic returns a Source seeded with seed, producing the same
// sequence for the same seed every run (spec §6: "a deterministic
// default (seedable)").
func NewDeterministic(seed int64) Source {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

// NewSystem returns a Source seeded from the system clock, suitable
// when run-to-run reproducibility is not required (spec §6: "a
// system-entropy default").
func NewSystem() Source {
	return &mathRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRand) Float64() float64 {
	return m.r.Float64()
}

func (m *mathRand) Seed(seed int64) {
	m.r.Seed(seed)
}
