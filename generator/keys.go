package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/mrpowers-io/falsa/core"
)

// KeyPools is the three-way partition of a permuted integer range backing
// one scale tier of the join key universe. Shared keys appear on both join
// sides; LeftOnly and RightOnly keys exist on one side each, producing
// controlled non-matches.
type KeyPools struct {
	Shared    []int64
	LeftOnly  []int64
	RightOnly []int64
}

// GenerateKeys builds the key pools for a tier of nn keys from keysSeed.
// The union of the pools is a permutation of [1, nn+nn/10]:
// |Shared| = floor(nn*0.9), |LeftOnly| = nn-|Shared|,
// |RightOnly| = floor(nn*1.1)-nn. Floors are exact integer arithmetic.
func GenerateKeys(nn int64, keysSeed uint64) (*KeyPools, error) {
	if nn < 0 {
		return nil, fmt.Errorf("%w: tier count should be non-negative but got %d", ErrRange, nn)
	}

	totalSize := nn + nn/10
	perm := make([]int64, totalSize)
	for i := range perm {
		perm[i] = int64(i) + 1
	}
	rng := rand.New(rand.NewPCG(keysSeed, 0))
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	xEnd := nn - (nn+9)/10

	pools := &KeyPools{
		Shared:    perm[:xEnd],
		LeftOnly:  perm[xEnd:nn],
		RightOnly: perm[nn:totalSize],
	}
	core.GetTracer().Debug(core.TraceComponentKeys, "key pools built", core.TraceContext(
		"tier", nn, "shared", len(pools.Shared), "leftOnly", len(pools.LeftOnly), "rightOnly", len(pools.RightOnly)))
	return pools, nil
}

// LeftPool returns Shared followed by LeftOnly, the candidate keys for
// left-side relations
func (p *KeyPools) LeftPool() []int64 {
	pool := make([]int64, 0, len(p.Shared)+len(p.LeftOnly))
	pool = append(pool, p.Shared...)
	return append(pool, p.LeftOnly...)
}

// RightPool returns Shared followed by RightOnly, the candidate keys for
// right-side relations
func (p *KeyPools) RightPool() []int64 {
	pool := make([]int64, 0, len(p.Shared)+len(p.RightOnly))
	pool = append(pool, p.Shared...)
	return append(pool, p.RightOnly...)
}

// SampleAll stretches pool to exactly size entries: the pool itself first,
// then size-len(pool) uniform draws with replacement seeded by seed. A pool
// longer than size is a caller error. The result is deterministic for fixed
// inputs.
func SampleAll(size int64, pool []int64, seed uint64) ([]int64, error) {
	n := int64(len(pool))
	if n > size {
		return nil, fmt.Errorf("%w: pool of %d keys exceeds requested size %d", ErrPrecondition, n, size)
	}
	if n == size {
		return pool, nil
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot stretch an empty pool to %d keys", ErrPrecondition, size)
	}

	out := make([]int64, size)
	copy(out, pool)
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := n; i < size; i++ {
		out[i] = pool[rng.Int64N(n)]
	}
	return out, nil
}
