package generator

import (
	"math"
	"math/rand/v2"
)

// SeedDeriver expands one root seed into a deterministic sequence of
// sub-seeds. Two derivers built from the same root seed emit identical
// sequences across runs and processes, which is the reproducibility
// guarantee the whole generation pipeline rests on. Each instance owns its
// stream; nothing is shared between derivers.
type SeedDeriver struct {
	rng *rand.Rand
}

// NewSeedDeriver creates a deriver seeded by rootSeed
func NewSeedDeriver(rootSeed uint64) *SeedDeriver {
	return &SeedDeriver{rng: rand.New(rand.NewPCG(rootSeed, 0))}
}

// Next returns the next sub-seed, uniform in [0, MaxSize]
func (d *SeedDeriver) Next() uint64 {
	return uint64(d.rng.Int64N(math.MaxInt64))
}

// Derive returns the next count sub-seeds in stream order
func (d *SeedDeriver) Derive(count int) []uint64 {
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = d.Next()
	}
	return seeds
}
