package generator

import (
	"fmt"
	"strings"
)

// MaxSize is the largest supported row count. It is also the ceiling of the
// derived seed stream, keeping every count and seed strictly inside the
// signed 64-bit range.
const MaxSize int64 = 9_223_372_036_854_775_806

// SizeTier is a named dataset magnitude. The constant value is the total
// row count, no mapping table needed.
type SizeTier int64

const (
	SizeSmall  SizeTier = 10_000_000
	SizeMedium SizeTier = 100_000_000
	SizeBig    SizeTier = 1_000_000_000
)

// ParseSizeTier maps SMALL/MEDIUM/BIG (case-insensitive) to a tier
func ParseSizeTier(s string) (SizeTier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMALL":
		return SizeSmall, nil
	case "MEDIUM":
		return SizeMedium, nil
	case "BIG":
		return SizeBig, nil
	default:
		return 0, fmt.Errorf("%w: size should be one of SMALL, MEDIUM, BIG but got %q", ErrRange, s)
	}
}

// Rows returns the total row count of the tier
func (t SizeTier) Rows() int64 {
	return int64(t)
}

// String returns the tier name
func (t SizeTier) String() string {
	switch t {
	case SizeSmall:
		return "SMALL"
	case SizeMedium:
		return "MEDIUM"
	case SizeBig:
		return "BIG"
	default:
		return fmt.Sprintf("SizeTier(%d)", int64(t))
	}
}

// Relation tags the closed set of dataset variants
type Relation int

const (
	RelationGroupBy Relation = iota
	RelationJoinLHS
	RelationJoinRHSSmall
	RelationJoinRHSMedium
	RelationJoinRHSBig
)

// String returns the relation name used in traces and messages
func (r Relation) String() string {
	switch r {
	case RelationGroupBy:
		return "groupby"
	case RelationJoinLHS:
		return "join_lhs"
	case RelationJoinRHSSmall:
		return "join_rhs_small"
	case RelationJoinRHSMedium:
		return "join_rhs_medium"
	case RelationJoinRHSBig:
		return "join_rhs_big"
	default:
		return "unknown"
	}
}

// DatasetSpec is the validated, immutable parameter set of one relation
// instance. N is the tier total; NRows is the relation's own row count,
// a fraction of N for the smaller join sides. Seed drives per-batch row
// content, KeysSeed drives the shared key universe of one join run.
type DatasetSpec struct {
	N         int64
	NRows     int64
	K         int64
	NAs       uint8
	Seed      uint64
	KeysSeed  uint64
	BatchSize int64
}

// Validate checks every bound before any allocation happens
func (s DatasetSpec) Validate() error {
	if s.N < 0 {
		return fmt.Errorf("%w: negative values are not supported but got size=%d", ErrRange, s.N)
	}
	if s.N > MaxSize {
		return fmt.Errorf("%w: size should not exceed %d but got %d", ErrRange, MaxSize, s.N)
	}
	if s.NRows < 0 {
		return fmt.Errorf("%w: negative values are not supported but got n_rows=%d", ErrRange, s.NRows)
	}
	if s.NAs > 100 {
		return fmt.Errorf("%w: nas should be in [0, 100], but got %d", ErrRange, s.NAs)
	}
	if s.K < 0 || s.K > s.N {
		return fmt.Errorf("%w: k should be positive and less than %d but got %d", ErrRange, s.N, s.K)
	}
	// An empty relation plans to zero batches, any batch size is moot then.
	if s.N > 0 && (s.BatchSize <= 0 || s.BatchSize > s.N) {
		return fmt.Errorf("%w: batch size should be positive and less than %d but got %d", ErrRange, s.N, s.BatchSize)
	}
	return nil
}
