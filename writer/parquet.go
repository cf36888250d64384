package writer

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/mrpowers-io/falsa/core"
	"github.com/mrpowers-io/falsa/vectorized"
)

// Rows are handed to parquet-go in slices of this many records so the
// map-backed row form never holds a whole multi-million-row batch at once.
const parquetWriteChunk = 65536

// ParquetWriter streams batches into one parquet file through a dynamic
// schema derived from the relation schema.
type ParquetWriter struct {
	path   string
	file   *os.File
	writer *parquet.GenericWriter[map[string]interface{}]
	schema *vectorized.Schema
}

// NewParquetWriter creates the output file and the parquet writer for the
// relation schema
func NewParquetWriter(schema *vectorized.Schema, path string) (*ParquetWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s failed: %w", path, err)
	}

	parquetSchema, err := ParquetSchema("falsa", schema)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &ParquetWriter{
		path:   path,
		file:   file,
		writer: parquet.NewGenericWriter[map[string]interface{}](file, &parquet.WriterConfig{Schema: parquetSchema}),
		schema: schema,
	}, nil
}

// WriteBatch appends one batch. Null entries are written as parquet nulls
// by omitting the field from the record; non-nullable columns always carry
// a value.
func (w *ParquetWriter) WriteBatch(batch *vectorized.VectorBatch) error {
	records := make([]map[string]interface{}, 0, parquetWriteChunk)
	for start := 0; start < batch.RowCount; start += parquetWriteChunk {
		end := start + parquetWriteChunk
		if end > batch.RowCount {
			end = batch.RowCount
		}

		records = records[:0]
		for row := start; row < end; row++ {
			record := make(map[string]interface{}, len(w.schema.Fields))
			for col, field := range w.schema.Fields {
				vec := batch.Columns[col]
				if vec.IsNull(row) {
					continue
				}
				switch vec.DataType {
				case vectorized.INT64:
					record[field.Name] = vec.Data.([]int64)[row]
				case vectorized.FLOAT64:
					record[field.Name] = vec.Data.([]float64)[row]
				case vectorized.STRING:
					record[field.Name] = vec.Data.([]string)[row]
				}
			}
			records = append(records, record)
		}

		if _, err := w.writer.Write(records); err != nil {
			return fmt.Errorf("writing rows to %s failed: %w", w.path, err)
		}
	}
	core.GetTracer().Debug(core.TraceComponentWriter, "parquet batch written", core.TraceContext(
		"path", w.path, "rows", batch.RowCount))
	return nil
}

// Close finalizes the parquet footer and closes the file
func (w *ParquetWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("closing parquet writer of %s failed: %w", w.path, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing %s failed: %w", w.path, err)
	}
	return nil
}

// ParquetSchema converts a relation schema into a parquet schema. Group
// fields come out ordered by name, which matches the column order of every
// relation schema here.
func ParquetSchema(name string, schema *vectorized.Schema) (*parquet.Schema, error) {
	group := make(parquet.Group)
	for _, field := range schema.Fields {
		var node parquet.Node
		switch field.DataType {
		case vectorized.INT64:
			node = parquet.Leaf(parquet.Int64Type)
		case vectorized.FLOAT64:
			node = parquet.Leaf(parquet.DoubleType)
		case vectorized.STRING:
			node = parquet.String()
		default:
			return nil, fmt.Errorf("field %s has unsupported data type %v", field.Name, field.DataType)
		}
		if field.Nullable {
			node = parquet.Optional(node)
		}
		group[field.Name] = node
	}
	return parquet.NewSchema(name, group), nil
}
