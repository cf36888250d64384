package generator

import (
	"fmt"

	"github.com/mrpowers-io/falsa/core"
	"github.com/mrpowers-io/falsa/vectorized"
)

// Generator produces the batches of one relation as a forward-only, finite
// sequence. Construction validates the spec, derives the key columns, and
// computes the batch plan; iteration synthesizes one batch per step:
//
//	for gen.Next() {
//	    batch := gen.Batch()
//	    ...
//	}
//	if err := gen.Error(); err != nil { ... }
//
// The sequence is not restartable. State never resets; a fresh instance is
// required to iterate again.
type Generator struct {
	relation Relation
	spec     DatasetSpec
	schema   *vectorized.Schema
	keys     [][]int64 // Pre-sampled key columns, one per key column of the relation
	plan     []BatchDescriptor
	synth    synthFunc

	pos    int   // Next descriptor index
	offset int64 // Rows consumed so far
	batch  *vectorized.VectorBatch
	err    error
	closed bool
}

type poolSide int

const (
	leftSide poolSide = iota
	rightSide
)

// NewGroupBy creates the generator of the GroupBy relation. KeysSeed is
// unused: the relation has no key columns.
func NewGroupBy(spec DatasetSpec) (*Generator, error) {
	spec.NRows = spec.N
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	plan, err := PlanBatches(spec.NRows, spec.BatchSize, NewSeedDeriver(spec.Seed))
	if err != nil {
		return nil, err
	}

	core.GetTracer().Info(core.TraceComponentGenerator, "groupby generator ready", core.TraceContext(
		"n", spec.N, "k", spec.K, "nas", spec.NAs, "batches", len(plan)))
	return &Generator{
		relation: RelationGroupBy,
		spec:     spec,
		schema:   GroupBySchema,
		synth:    synthGroupBy,
		plan:     plan,
	}, nil
}

// NewJoinLHS creates the generator of the join left-hand side: three key
// columns drawn from the left pools of the three scale tiers, NRows = N.
func NewJoinLHS(spec DatasetSpec) (*Generator, error) {
	return newJoin(RelationJoinLHS, spec, 3, leftSide, JoinLHSSchema, synthJoinLHS)
}

// NewJoinRHSSmall creates the generator of the small right-hand side: one
// key column from the first tier's right pools, NRows = N/1e6.
func NewJoinRHSSmall(spec DatasetSpec) (*Generator, error) {
	return newJoin(RelationJoinRHSSmall, spec, 1, rightSide, JoinRHSSmallSchema, synthJoinRHSSmall)
}

// NewJoinRHSMedium creates the generator of the medium right-hand side:
// two key columns from the first two tiers' right pools, NRows = N/1e3.
func NewJoinRHSMedium(spec DatasetSpec) (*Generator, error) {
	return newJoin(RelationJoinRHSMedium, spec, 2, rightSide, JoinRHSMediumSchema, synthJoinRHSMedium)
}

// NewJoinRHSBig creates the generator of the big right-hand side: three
// key columns from the right pools of the three tiers, NRows = N.
func NewJoinRHSBig(spec DatasetSpec) (*Generator, error) {
	return newJoin(RelationJoinRHSBig, spec, 3, rightSide, JoinRHSBigSchema, synthJoinRHSBig)
}

// newJoin builds a join-side generator. Key column i draws from tier i
// (N/1e6, N/1e3, N) on the requested side, stretched to NRows with the
// sampling seed KeysSeed+i. All four relations of one join run derive the
// same pools from the same KeysSeed, so they reference one key universe.
func newJoin(relation Relation, spec DatasetSpec, numKeys int, side poolSide, schema *vectorized.Schema, synth synthFunc) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	tiers := [3]int64{spec.N / 1_000_000, spec.N / 1_000, spec.N}
	keys := make([][]int64, numKeys)
	for i := 0; i < numKeys; i++ {
		pools, err := GenerateKeys(tiers[i], spec.KeysSeed)
		if err != nil {
			return nil, err
		}
		pool := pools.RightPool()
		if side == leftSide {
			pool = pools.LeftPool()
		}
		col, err := SampleAll(spec.NRows, pool, spec.KeysSeed+uint64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("sampling key column %d of %s failed: %w", i+1, relation, err)
		}
		keys[i] = col
	}

	plan, err := PlanBatches(spec.NRows, spec.BatchSize, NewSeedDeriver(spec.Seed))
	if err != nil {
		return nil, err
	}

	core.GetTracer().Info(core.TraceComponentGenerator, "join generator ready", core.TraceContext(
		"relation", relation.String(), "n", spec.N, "nRows", spec.NRows, "keyColumns", numKeys, "batches", len(plan)))
	return &Generator{
		relation: relation,
		spec:     spec,
		schema:   schema,
		keys:     keys,
		plan:     plan,
		synth:    synth,
	}, nil
}

// Next synthesizes the next batch. It returns false when the plan is
// exhausted, the generator is closed, or synthesis failed; check Error
// after the loop.
func (g *Generator) Next() bool {
	if g.closed || g.err != nil {
		return false
	}
	if g.pos >= len(g.plan) {
		g.batch = nil
		return false
	}

	d := g.plan[g.pos]
	slices := make([][]int64, len(g.keys))
	for i := range g.keys {
		slices[i] = g.keys[i][g.offset : g.offset+d.Size]
	}

	batch, err := g.synth(g.spec, d.Seed, slices, d.Size)
	if err != nil {
		g.err = fmt.Errorf("batch %d of %s failed: %w", g.pos, g.relation, err)
		g.batch = nil
		return false
	}

	core.GetTracer().Verbose(core.TraceComponentRows, "batch synthesized", core.TraceContext(
		"relation", g.relation.String(), "batch", g.pos, "rows", d.Size))
	g.batch = batch
	g.pos++
	g.offset += d.Size
	return true
}

// Batch returns the batch produced by the last successful Next
func (g *Generator) Batch() *vectorized.VectorBatch {
	return g.batch
}

// Error returns the first synthesis failure, if any
func (g *Generator) Error() error {
	return g.err
}

// Close stops iteration early; subsequent Next calls return false
func (g *Generator) Close() error {
	g.closed = true
	g.batch = nil
	return nil
}

// NumBatches returns the planned batch count
func (g *Generator) NumBatches() int {
	return len(g.plan)
}

// Schema returns the relation's output schema
func (g *Generator) Schema() *vectorized.Schema {
	return g.schema
}

// Plan returns the planned batch descriptors in order
func (g *Generator) Plan() []BatchDescriptor {
	return g.plan
}
