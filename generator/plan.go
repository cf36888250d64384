package generator

import (
	"fmt"

	"github.com/mrpowers-io/falsa/core"
)

// BatchDescriptor is one planned generation step: how many rows to
// synthesize and the seed driving their content
type BatchDescriptor struct {
	Size int64
	Seed uint64
}

// PlanBatches splits totalRows into descriptors of batchSize rows plus one
// remainder descriptor when the division is uneven. Descriptor seeds are
// pulled from seeds in order, one per batch. A zero totalRows yields an
// empty plan.
func PlanBatches(totalRows, batchSize int64, seeds *SeedDeriver) ([]BatchDescriptor, error) {
	if totalRows == 0 {
		return nil, nil
	}
	if batchSize <= 0 || batchSize > totalRows {
		return nil, fmt.Errorf("%w: batch size should be positive and less than %d but got %d", ErrRange, totalRows, batchSize)
	}

	numFull := totalRows / batchSize
	plan := make([]BatchDescriptor, 0, numFull+1)
	for i := int64(0); i < numFull; i++ {
		plan = append(plan, BatchDescriptor{Size: batchSize, Seed: seeds.Next()})
	}
	if rem := totalRows % batchSize; rem != 0 {
		plan = append(plan, BatchDescriptor{Size: rem, Seed: seeds.Next()})
	}

	core.GetTracer().Debug(core.TraceComponentPlan, "batch plan computed", core.TraceContext(
		"totalRows", totalRows, "batchSize", batchSize, "batches", len(plan)))
	return plan, nil
}
