package generator

import (
	"errors"
	"testing"
)

func TestGenerateKeysPartition(t *testing.T) {
	testCases := []struct {
		name string
		nn   int64
	}{
		{"Ten", 10},
		{"NonDivisible", 95},
		{"Hundred", 100},
		{"Thousand", 1000},
		{"Odd", 12345},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pools, err := GenerateKeys(tc.nn, 142)
			if err != nil {
				t.Fatalf("GenerateKeys failed: %v", err)
			}

			totalSize := tc.nn + tc.nn/10
			wantShared := tc.nn - (tc.nn+9)/10
			wantLeft := tc.nn - wantShared
			wantRight := totalSize - tc.nn

			if int64(len(pools.Shared)) != wantShared {
				t.Errorf("len(Shared) = %d, expected %d", len(pools.Shared), wantShared)
			}
			if int64(len(pools.LeftOnly)) != wantLeft {
				t.Errorf("len(LeftOnly) = %d, expected %d", len(pools.LeftOnly), wantLeft)
			}
			if int64(len(pools.RightOnly)) != wantRight {
				t.Errorf("len(RightOnly) = %d, expected %d", len(pools.RightOnly), wantRight)
			}

			// The three pools together must be a permutation of [1, totalSize]:
			// every value in range, no value twice.
			seen := make(map[int64]bool, totalSize)
			for _, pool := range [][]int64{pools.Shared, pools.LeftOnly, pools.RightOnly} {
				for _, key := range pool {
					if key < 1 || key > totalSize {
						t.Fatalf("key %d out of range [1, %d]", key, totalSize)
					}
					if seen[key] {
						t.Fatalf("key %d appears twice", key)
					}
					seen[key] = true
				}
			}
			if int64(len(seen)) != totalSize {
				t.Errorf("union size = %d, expected %d", len(seen), totalSize)
			}
		})
	}
}

func TestGenerateKeysDeterminism(t *testing.T) {
	first, err := GenerateKeys(1000, 42)
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}
	second, err := GenerateKeys(1000, 42)
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}

	for i := range first.Shared {
		if first.Shared[i] != second.Shared[i] {
			t.Fatalf("Shared[%d] = %d, expected %d", i, second.Shared[i], first.Shared[i])
		}
	}

	other, err := GenerateKeys(1000, 43)
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}
	same := true
	for i := range first.Shared {
		if first.Shared[i] != other.Shared[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("distinct key seeds produced an identical shared pool")
	}
}

func TestGenerateKeysNegative(t *testing.T) {
	if _, err := GenerateKeys(-1, 42); !errors.Is(err, ErrRange) {
		t.Errorf("GenerateKeys(-1) error = %v, expected ErrRange", err)
	}
}

func TestPoolSides(t *testing.T) {
	pools, err := GenerateKeys(100, 42)
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}

	left := pools.LeftPool()
	if len(left) != len(pools.Shared)+len(pools.LeftOnly) {
		t.Fatalf("len(LeftPool) = %d, expected %d", len(left), len(pools.Shared)+len(pools.LeftOnly))
	}
	for i, key := range pools.Shared {
		if left[i] != key {
			t.Fatalf("LeftPool[%d] = %d, expected shared key %d", i, left[i], key)
		}
	}
	for i, key := range pools.LeftOnly {
		if left[len(pools.Shared)+i] != key {
			t.Fatalf("LeftPool tail[%d] = %d, expected left-only key %d", i, left[len(pools.Shared)+i], key)
		}
	}

	right := pools.RightPool()
	if len(right) != len(pools.Shared)+len(pools.RightOnly) {
		t.Fatalf("len(RightPool) = %d, expected %d", len(right), len(pools.Shared)+len(pools.RightOnly))
	}
	for i, key := range pools.RightOnly {
		if right[len(pools.Shared)+i] != key {
			t.Fatalf("RightPool tail[%d] = %d, expected right-only key %d", i, right[len(pools.Shared)+i], key)
		}
	}
}

func TestSampleAll(t *testing.T) {
	pool := []int64{5, 9, 2, 7}

	t.Run("ExactSize", func(t *testing.T) {
		got, err := SampleAll(4, pool, 42)
		if err != nil {
			t.Fatalf("SampleAll failed: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("len = %d, expected 4", len(got))
		}
		for i := range pool {
			if got[i] != pool[i] {
				t.Errorf("got[%d] = %d, expected %d", i, got[i], pool[i])
			}
		}
	})

	t.Run("Stretched", func(t *testing.T) {
		got, err := SampleAll(100, pool, 42)
		if err != nil {
			t.Fatalf("SampleAll failed: %v", err)
		}
		if len(got) != 100 {
			t.Fatalf("len = %d, expected 100", len(got))
		}
		// Pool first, draws after; every draw must come from the pool.
		members := map[int64]bool{5: true, 9: true, 2: true, 7: true}
		for i := range pool {
			if got[i] != pool[i] {
				t.Errorf("got[%d] = %d, expected %d", i, got[i], pool[i])
			}
		}
		for i := len(pool); i < len(got); i++ {
			if !members[got[i]] {
				t.Errorf("draw %d = %d, not a pool member", i, got[i])
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := SampleAll(50, pool, 7)
		if err != nil {
			t.Fatalf("SampleAll failed: %v", err)
		}
		second, err := SampleAll(50, pool, 7)
		if err != nil {
			t.Fatalf("SampleAll failed: %v", err)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("sample %d = %d, expected %d", i, second[i], first[i])
			}
		}
	})

	t.Run("PoolLargerThanSize", func(t *testing.T) {
		if _, err := SampleAll(2, pool, 42); !errors.Is(err, ErrPrecondition) {
			t.Errorf("error = %v, expected ErrPrecondition", err)
		}
	})

	t.Run("EmptyPoolStretched", func(t *testing.T) {
		if _, err := SampleAll(10, nil, 42); !errors.Is(err, ErrPrecondition) {
			t.Errorf("error = %v, expected ErrPrecondition", err)
		}
	})

	t.Run("EmptyPoolEmptySize", func(t *testing.T) {
		got, err := SampleAll(0, nil, 42)
		if err != nil {
			t.Fatalf("SampleAll(0, nil) failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, expected 0", len(got))
		}
	})
}
