package generator

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/mrpowers-io/falsa/vectorized"
)

// Row synthesis is a pure function of (spec, seed, key slices, size): the
// same inputs always produce the same batch. Each batch owns one ChaCha8
// stream; draws happen row-major, columns in schema order within a row.
// Nullable columns roll uniform 0..100 first and keep the value when
// roll >= nas, skipping the value draw otherwise.

type synthFunc func(spec DatasetSpec, seed uint64, keys [][]int64, size int64) (*vectorized.VectorBatch, error)

func newRowRNG(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// uniformInt draws from [lo, hi] inclusive
func uniformInt(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int64N(hi-lo+1)
}

// uniformFloat draws from [lo, hi)
func uniformFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func keepValue(rng *rand.Rand, nas uint8) bool {
	return rng.Int64N(101) >= int64(nas)
}

func keyString(key int64) string {
	return "id" + strconv.FormatInt(key, 10)
}

func synthGroupBy(spec DatasetSpec, seed uint64, _ [][]int64, size int64) (*vectorized.VectorBatch, error) {
	if spec.K < 1 {
		return nil, fmt.Errorf("group cardinality should be positive but got %d", spec.K)
	}
	nk := spec.N / spec.K

	batch := vectorized.NewVectorBatch(GroupBySchema, int(size))
	id1, id2, id3 := batch.Columns[0], batch.Columns[1], batch.Columns[2]
	id4, id5, id6 := batch.Columns[3], batch.Columns[4], batch.Columns[5]
	v1, v2, v3 := batch.Columns[6], batch.Columns[7], batch.Columns[8]

	rng := newRowRNG(seed)
	for i := int64(0); i < size; i++ {
		// id1, string in form id123, 123 from 1-K
		if keepValue(rng, spec.NAs) {
			id1.AppendString(fmt.Sprintf("id%03d", uniformInt(rng, 1, spec.K)))
		} else {
			id1.AppendNull()
		}
		// id2, string in form id123, 123 from 1-N/K
		if keepValue(rng, spec.NAs) {
			id2.AppendString(fmt.Sprintf("id%03d", uniformInt(rng, 1, nk)))
		} else {
			id2.AppendNull()
		}
		// id3, string in form id1234567890, number from 1-N/K
		if keepValue(rng, spec.NAs) {
			id3.AppendString(fmt.Sprintf("id%010d", uniformInt(rng, 1, nk)))
		} else {
			id3.AppendNull()
		}
		// id4, 1-K, int
		if keepValue(rng, spec.NAs) {
			id4.AppendInt64(uniformInt(rng, 1, spec.K))
		} else {
			id4.AppendNull()
		}
		// id5, 1-K, int
		if keepValue(rng, spec.NAs) {
			id5.AppendInt64(uniformInt(rng, 1, spec.K))
		} else {
			id5.AppendNull()
		}
		// id6, 1-N/K, int
		if keepValue(rng, spec.NAs) {
			id6.AppendInt64(uniformInt(rng, 1, nk))
		} else {
			id6.AppendNull()
		}
		v1.AppendInt64(uniformInt(rng, 1, 5))
		v2.AppendInt64(uniformInt(rng, 1, 15))
		v3.AppendFloat64(uniformFloat(rng, 0, 100))
	}
	batch.RowCount = int(size)
	return batch, nil
}

func synthJoinLHS(_ DatasetSpec, seed uint64, keys [][]int64, size int64) (*vectorized.VectorBatch, error) {
	if err := checkKeyColumns(keys, 3, size); err != nil {
		return nil, err
	}
	k1, k2, k3 := keys[0], keys[1], keys[2]

	batch := vectorized.NewVectorBatch(JoinLHSSchema, int(size))
	rng := newRowRNG(seed)
	for i := int64(0); i < size; i++ {
		batch.Columns[0].AppendInt64(k1[i])
		batch.Columns[1].AppendInt64(k2[i])
		batch.Columns[2].AppendInt64(k3[i])
		batch.Columns[3].AppendString(keyString(k1[i]))
		batch.Columns[4].AppendString(keyString(k2[i]))
		batch.Columns[5].AppendString(keyString(k3[i]))
		batch.Columns[6].AppendFloat64(uniformFloat(rng, 1, 100))
	}
	batch.RowCount = int(size)
	return batch, nil
}

func synthJoinRHSSmall(_ DatasetSpec, seed uint64, keys [][]int64, size int64) (*vectorized.VectorBatch, error) {
	if err := checkKeyColumns(keys, 1, size); err != nil {
		return nil, err
	}
	k1 := keys[0]

	batch := vectorized.NewVectorBatch(JoinRHSSmallSchema, int(size))
	rng := newRowRNG(seed)
	for i := int64(0); i < size; i++ {
		batch.Columns[0].AppendInt64(k1[i])
		batch.Columns[1].AppendString(keyString(k1[i]))
		batch.Columns[2].AppendFloat64(uniformFloat(rng, 1, 100))
	}
	batch.RowCount = int(size)
	return batch, nil
}

func synthJoinRHSMedium(_ DatasetSpec, seed uint64, keys [][]int64, size int64) (*vectorized.VectorBatch, error) {
	if err := checkKeyColumns(keys, 2, size); err != nil {
		return nil, err
	}
	k1, k2 := keys[0], keys[1]

	batch := vectorized.NewVectorBatch(JoinRHSMediumSchema, int(size))
	rng := newRowRNG(seed)
	for i := int64(0); i < size; i++ {
		batch.Columns[0].AppendInt64(k1[i])
		batch.Columns[1].AppendInt64(k2[i])
		batch.Columns[2].AppendString(keyString(k1[i]))
		batch.Columns[3].AppendString(keyString(k2[i]))
		batch.Columns[4].AppendFloat64(uniformFloat(rng, 1, 100))
	}
	batch.RowCount = int(size)
	return batch, nil
}

// synthJoinRHSBig honors the null percentage on its nullable columns: the
// three key ints and v2. The key strings id4/id5/id6 always carry the key.
func synthJoinRHSBig(spec DatasetSpec, seed uint64, keys [][]int64, size int64) (*vectorized.VectorBatch, error) {
	if err := checkKeyColumns(keys, 3, size); err != nil {
		return nil, err
	}
	k1, k2, k3 := keys[0], keys[1], keys[2]

	batch := vectorized.NewVectorBatch(JoinRHSBigSchema, int(size))
	id1, id2, id3 := batch.Columns[0], batch.Columns[1], batch.Columns[2]
	v2 := batch.Columns[6]

	rng := newRowRNG(seed)
	for i := int64(0); i < size; i++ {
		if keepValue(rng, spec.NAs) {
			id1.AppendInt64(k1[i])
		} else {
			id1.AppendNull()
		}
		if keepValue(rng, spec.NAs) {
			id2.AppendInt64(k2[i])
		} else {
			id2.AppendNull()
		}
		if keepValue(rng, spec.NAs) {
			id3.AppendInt64(k3[i])
		} else {
			id3.AppendNull()
		}
		batch.Columns[3].AppendString(keyString(k1[i]))
		batch.Columns[4].AppendString(keyString(k2[i]))
		batch.Columns[5].AppendString(keyString(k3[i]))
		if keepValue(rng, spec.NAs) {
			v2.AppendFloat64(uniformFloat(rng, 1, 100))
		} else {
			v2.AppendNull()
		}
	}
	batch.RowCount = int(size)
	return batch, nil
}

func checkKeyColumns(keys [][]int64, want int, size int64) error {
	if len(keys) != want {
		return fmt.Errorf("key column count mismatch: %d != %d", len(keys), want)
	}
	for i, col := range keys {
		if int64(len(col)) != size {
			return fmt.Errorf("keys size mismatch: %d != %d for column %d", len(col), size, i+1)
		}
	}
	return nil
}
