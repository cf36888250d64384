package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrpowers-io/falsa/core"
	"github.com/mrpowers-io/falsa/vectorized"
)

const deltaLogName = "00000000000000000000.json"

// DeltaWriter writes one delta table: a directory holding data.parquet plus
// a single-commit transaction log emitted on Close.
type DeltaWriter struct {
	dir     string
	schema  *vectorized.Schema
	parquet *ParquetWriter
}

// Log entry layouts. Field order matches the delta transaction-log contract;
// empty maps and slices must serialize as {} and [], never null.

type deltaMetaData struct {
	ID               string            `json:"id"`
	Format           deltaFormat       `json:"format"`
	SchemaString     string            `json:"schemaString"`
	Configuration    map[string]string `json:"configuration"`
	PartitionColumns []string          `json:"partitionColumns"`
}

type deltaFormat struct {
	Provider string            `json:"provider"`
	Options  map[string]string `json:"options"`
}

type deltaAdd struct {
	Path             string            `json:"path"`
	PartitionValues  map[string]string `json:"partitionValues"`
	Size             int64             `json:"size"`
	ModificationTime int64             `json:"modificationTime"`
	DataChange       bool              `json:"dataChange"`
}

type deltaProtocol struct {
	MinReaderVersion int `json:"minReaderVersion"`
	MinWriterVersion int `json:"minWriterVersion"`
}

type deltaStructType struct {
	Type   string       `json:"type"`
	Fields []deltaField `json:"fields"`
}

type deltaField struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Nullable bool              `json:"nullable"`
	Metadata map[string]string `json:"metadata"`
}

// NewDeltaWriter creates the table directory and the parquet data file
// inside it
func NewDeltaWriter(schema *vectorized.Schema, dir string) (*DeltaWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating delta directory %s failed: %w", dir, err)
	}

	pw, err := NewParquetWriter(schema, filepath.Join(dir, "data.parquet"))
	if err != nil {
		return nil, err
	}
	return &DeltaWriter{dir: dir, schema: schema, parquet: pw}, nil
}

// WriteBatch appends one batch to the data file
func (w *DeltaWriter) WriteBatch(batch *vectorized.VectorBatch) error {
	return w.parquet.WriteBatch(batch)
}

// Close finalizes the data file, then writes the transaction log listing
// the table metadata, one add entry per data file, and the protocol versions.
func (w *DeltaWriter) Close() error {
	if err := w.parquet.Close(); err != nil {
		return err
	}
	if err := w.writeLog(); err != nil {
		return err
	}
	core.GetTracer().Debug(core.TraceComponentWriter, "delta log written", core.TraceContext("dir", w.dir))
	return nil
}

func (w *DeltaWriter) writeLog() error {
	logDir := filepath.Join(w.dir, "_delta_log")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("creating %s failed: %w", logDir, err)
	}

	entries := make([]string, 0, 3)

	meta, err := w.metaDataEntry()
	if err != nil {
		return err
	}
	entries = append(entries, meta)

	adds, err := w.addEntries()
	if err != nil {
		return err
	}
	entries = append(entries, adds...)

	protocol, err := json.Marshal(map[string]deltaProtocol{
		"protocol": {MinReaderVersion: 1, MinWriterVersion: 2},
	})
	if err != nil {
		return fmt.Errorf("encoding protocol entry failed: %w", err)
	}
	entries = append(entries, string(protocol))

	logPath := filepath.Join(logDir, deltaLogName)
	if err := os.WriteFile(logPath, []byte(strings.Join(entries, "\n")), 0644); err != nil {
		return fmt.Errorf("writing %s failed: %w", logPath, err)
	}
	return nil
}

func (w *DeltaWriter) metaDataEntry() (string, error) {
	fields := make([]deltaField, len(w.schema.Fields))
	for i, f := range w.schema.Fields {
		fields[i] = deltaField{
			Name:     f.Name,
			Type:     deltaType(f.DataType),
			Nullable: f.Nullable,
			Metadata: map[string]string{},
		}
	}
	schemaString, err := json.Marshal(deltaStructType{Type: "struct", Fields: fields})
	if err != nil {
		return "", fmt.Errorf("encoding schema string failed: %w", err)
	}

	entry, err := json.Marshal(map[string]deltaMetaData{
		"metaData": {
			ID:               uuid.New().String(),
			Format:           deltaFormat{Provider: "parquet", Options: map[string]string{}},
			SchemaString:     string(schemaString),
			Configuration:    map[string]string{},
			PartitionColumns: []string{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding metaData entry failed: %w", err)
	}
	return string(entry), nil
}

// addEntries lists every parquet file of the table in name order, one add
// action each
func (w *DeltaWriter) addEntries() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(w.dir, "*.parquet"))
	if err != nil {
		return nil, fmt.Errorf("listing parquet files of %s failed: %w", w.dir, err)
	}

	entries := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("stat %s failed: %w", match, err)
		}
		entry, err := json.Marshal(map[string]deltaAdd{
			"add": {
				Path:             filepath.Base(match),
				PartitionValues:  map[string]string{},
				Size:             info.Size(),
				ModificationTime: time.Now().UnixMilli(),
				DataChange:       true,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("encoding add entry failed: %w", err)
		}
		entries = append(entries, string(entry))
	}
	return entries, nil
}

// deltaType maps a column type to its delta-log name
func deltaType(dt vectorized.DataType) string {
	switch dt {
	case vectorized.INT64:
		return "long"
	case vectorized.FLOAT64:
		return "double"
	default:
		return "string"
	}
}
