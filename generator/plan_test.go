package generator

import (
	"errors"
	"testing"
)

func TestPlanBatchesCompleteness(t *testing.T) {
	testCases := []struct {
		name        string
		totalRows   int64
		batchSize   int64
		wantBatches int
	}{
		{"Even", 10_000_000, 5_000_000, 2},
		{"Uneven", 10, 3, 4},
		{"SingleBatch", 7, 7, 1},
		{"BatchLargerRemainder", 1_000_001, 1_000_000, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := PlanBatches(tc.totalRows, tc.batchSize, NewSeedDeriver(42))
			if err != nil {
				t.Fatalf("PlanBatches failed: %v", err)
			}
			if len(plan) != tc.wantBatches {
				t.Fatalf("batch count = %d, expected %d", len(plan), tc.wantBatches)
			}

			var sum int64
			for i, d := range plan {
				sum += d.Size
				if i < len(plan)-1 && d.Size != tc.batchSize {
					t.Errorf("batch %d size = %d, expected %d", i, d.Size, tc.batchSize)
				}
				if d.Size <= 0 || d.Size > tc.batchSize {
					t.Errorf("batch %d size = %d, out of (0, %d]", i, d.Size, tc.batchSize)
				}
			}
			if sum != tc.totalRows {
				t.Errorf("planned sizes sum to %d, expected %d", sum, tc.totalRows)
			}
		})
	}
}

func TestPlanBatchesSeedOrder(t *testing.T) {
	wantSeeds := NewSeedDeriver(42).Derive(4)
	plan, err := PlanBatches(10, 3, NewSeedDeriver(42))
	if err != nil {
		t.Fatalf("PlanBatches failed: %v", err)
	}

	for i, d := range plan {
		if d.Seed != wantSeeds[i] {
			t.Errorf("batch %d seed = %d, expected %d", i, d.Seed, wantSeeds[i])
		}
	}
}

func TestPlanBatchesTwoHalves(t *testing.T) {
	// Two 5M batches out of 10M rows; replanning with the same root
	// reproduces both seeds.
	first, err := PlanBatches(10_000_000, 5_000_000, NewSeedDeriver(7))
	if err != nil {
		t.Fatalf("PlanBatches failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("batch count = %d, expected 2", len(first))
	}
	for i, d := range first {
		if d.Size != 5_000_000 {
			t.Errorf("batch %d size = %d, expected 5000000", i, d.Size)
		}
	}

	second, err := PlanBatches(10_000_000, 5_000_000, NewSeedDeriver(7))
	if err != nil {
		t.Fatalf("PlanBatches failed: %v", err)
	}
	for i := range first {
		if first[i].Seed != second[i].Seed {
			t.Errorf("batch %d seed = %d on rerun, expected %d", i, second[i].Seed, first[i].Seed)
		}
	}
}

func TestPlanBatchesZeroRows(t *testing.T) {
	plan, err := PlanBatches(0, 5, NewSeedDeriver(42))
	if err != nil {
		t.Fatalf("PlanBatches(0) failed: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("batch count = %d, expected 0", len(plan))
	}
}

func TestPlanBatchesInvalidBatchSize(t *testing.T) {
	testCases := []struct {
		name      string
		totalRows int64
		batchSize int64
	}{
		{"Zero", 10, 0},
		{"Negative", 10, -1},
		{"LargerThanTotal", 10, 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := PlanBatches(tc.totalRows, tc.batchSize, NewSeedDeriver(42)); !errors.Is(err, ErrRange) {
				t.Errorf("error = %v, expected ErrRange", err)
			}
		})
	}
}
