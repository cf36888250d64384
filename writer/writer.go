package writer

import (
	"fmt"
	"os"

	"github.com/mrpowers-io/falsa/vectorized"
)

// BatchWriter persists the columnar batches of one relation. WriteBatch is
// called once per generated batch, in plan order; Close finalizes buffered
// output and must be called exactly once.
type BatchWriter interface {
	WriteBatch(batch *vectorized.VectorBatch) error
	Close() error
}

// NewWriter constructs the backend for the chosen format. The path is a
// file for CSV and PARQUET and a directory for DELTA.
func NewWriter(format Format, schema *vectorized.Schema, path string) (BatchWriter, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(schema, path)
	case FormatParquet:
		return NewParquetWriter(schema, path)
	case FormatDelta:
		return NewDeltaWriter(schema, path)
	default:
		return nil, fmt.Errorf("unsupported data format: %d", format)
	}
}

// ClearPrevious removes the output of an earlier run at path. Plain formats
// are single files, delta tables are directories. A missing target is not
// an error.
func ClearPrevious(path string, format Format) error {
	if format.IsDirectory() {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing previous output %s failed: %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous output %s failed: %w", path, err)
	}
	return nil
}
