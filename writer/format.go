package writer

import (
	"fmt"
	"strings"
)

// Format selects the serialization backend for one relation. It is chosen
// once at writer construction and never changes mid-run.
type Format int

const (
	FormatCSV Format = iota
	FormatParquet
	FormatDelta
)

// ParseFormat maps CSV/PARQUET/DELTA (case-insensitive) to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CSV":
		return FormatCSV, nil
	case "PARQUET":
		return FormatParquet, nil
	case "DELTA":
		return FormatDelta, nil
	default:
		return 0, fmt.Errorf("data format should be one of CSV, PARQUET, DELTA but got %q", s)
	}
}

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatParquet:
		return "PARQUET"
	case FormatDelta:
		return "DELTA"
	default:
		return "UNKNOWN"
	}
}

// Extension returns the filename suffix of the format. Delta outputs are
// directories and carry no extension.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatParquet:
		return ".parquet"
	default:
		return ""
	}
}

// IsDirectory reports whether the format writes a directory instead of a
// single file
func (f Format) IsDirectory() bool {
	return f == FormatDelta
}
