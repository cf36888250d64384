package writer

import (
	"fmt"
	"strconv"
	"strings"
)

// Dataset names the output templates of the benchmark relations. The set is
// closed; every relation the generator produces maps to exactly one entry.
type Dataset int

const (
	DatasetGroupBy Dataset = iota
	DatasetJoinBig
	DatasetJoinBigNA
	DatasetJoinSmall
	DatasetJoinMedium
	DatasetJoinLHS
)

// String returns the dataset name
func (d Dataset) String() string {
	switch d {
	case DatasetGroupBy:
		return "groupby"
	case DatasetJoinBig:
		return "join_big"
	case DatasetJoinBigNA:
		return "join_big_na"
	case DatasetJoinSmall:
		return "join_small"
	case DatasetJoinMedium:
		return "join_medium"
	case DatasetJoinLHS:
		return "join_lhs"
	default:
		return "unknown"
	}
}

// Divisor returns the ratio between the tier total and the dataset's own
// row count: a dataset holds n/Divisor rows.
func (d Dataset) Divisor() int64 {
	switch d {
	case DatasetJoinSmall:
		return 1_000_000
	case DatasetJoinMedium:
		return 1_000
	default:
		return 1
	}
}

// Filename renders the benchmark-contract output name of one dataset, e.g.
// G1_1e7_1e7_100_0.csv or J1_1e7_1e4_0.parquet. Delta names have no
// extension; the name is a directory.
func Filename(d Dataset, n, k int64, nas uint8, format Format) string {
	ext := format.Extension()
	nSci := prettySci(n)
	nDivided := prettySci(n / d.Divisor())

	switch d {
	case DatasetGroupBy:
		return fmt.Sprintf("G1_%s_%s_%d_%d%s", nSci, nSci, k, nas, ext)
	case DatasetJoinBig:
		return fmt.Sprintf("J1_%s_%s_NA%s", nSci, nSci, ext)
	case DatasetJoinBigNA:
		return fmt.Sprintf("J1_%s_%s_%d%s", nSci, nSci, nas, ext)
	case DatasetJoinSmall, DatasetJoinMedium:
		return fmt.Sprintf("J1_%s_%s_%d%s", nSci, nDivided, nas, ext)
	case DatasetJoinLHS:
		return fmt.Sprintf("J1_%s_NA_%d%s", nSci, nas, ext)
	default:
		return fmt.Sprintf("unknown_%s%s", nSci, ext)
	}
}

// prettySci renders a row count the way the benchmark names files:
// 10,000,000 becomes 1e7, 5 becomes 5e0, 0 becomes NA. Exponents of ten or
// more keep their digits (1e10).
func prettySci(n int64) string {
	if n == 0 {
		return "NA"
	}

	formatted := strings.ReplaceAll(fmt.Sprintf("%.0e", float64(n)), "+", "")
	exp, _ := strconv.Atoi(formatted[strings.IndexByte(formatted, 'e')+1:])

	switch {
	case exp >= 10:
		return formatted
	case exp == 0:
		return strings.Replace(formatted, "00", "0", 1)
	default:
		return strings.ReplaceAll(formatted, "0", "")
	}
}
