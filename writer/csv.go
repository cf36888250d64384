package writer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mrpowers-io/falsa/core"
	"github.com/mrpowers-io/falsa/vectorized"
)

const csvBufferSize = 1 << 20

// CSVWriter streams batches into one comma-separated file. The header row
// is written at construction; null entries become empty fields; floats use
// the shortest representation that round-trips.
type CSVWriter struct {
	path   string
	file   *os.File
	buf    *bufio.Writer
	csv    *csv.Writer
	schema *vectorized.Schema
	record []string
}

// NewCSVWriter creates the output file and writes the header row
func NewCSVWriter(schema *vectorized.Schema, path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s failed: %w", path, err)
	}

	buf := bufio.NewWriterSize(file, csvBufferSize)
	w := &CSVWriter{
		path:   path,
		file:   file,
		buf:    buf,
		csv:    csv.NewWriter(buf),
		schema: schema,
		record: make([]string, len(schema.Fields)),
	}

	header := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		header[i] = f.Name
	}
	if err := w.csv.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing header of %s failed: %w", path, err)
	}
	return w, nil
}

// WriteBatch appends one batch, one CSV record per row
func (w *CSVWriter) WriteBatch(batch *vectorized.VectorBatch) error {
	for row := 0; row < batch.RowCount; row++ {
		for col, vec := range batch.Columns {
			w.record[col] = formatCSVValue(vec, row)
		}
		if err := w.csv.Write(w.record); err != nil {
			return fmt.Errorf("writing row to %s failed: %w", w.path, err)
		}
	}
	core.GetTracer().Debug(core.TraceComponentWriter, "csv batch written", core.TraceContext(
		"path", w.path, "rows", batch.RowCount))
	return nil
}

// Close flushes buffered records and closes the file
func (w *CSVWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flushing %s failed: %w", w.path, err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flushing %s failed: %w", w.path, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing %s failed: %w", w.path, err)
	}
	return nil
}

func formatCSVValue(vec *vectorized.Vector, row int) string {
	if vec.IsNull(row) {
		return ""
	}
	switch vec.DataType {
	case vectorized.INT64:
		return strconv.FormatInt(vec.Data.([]int64)[row], 10)
	case vectorized.FLOAT64:
		return strconv.FormatFloat(vec.Data.([]float64)[row], 'g', -1, 64)
	case vectorized.STRING:
		return vec.Data.([]string)[row]
	default:
		return ""
	}
}
