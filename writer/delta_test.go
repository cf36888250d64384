package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrpowers-io/falsa/vectorized"
)

func TestDeltaWriterLog(t *testing.T) {
	schema := testSchema()
	dir := filepath.Join(t.TempDir(), "G1_1e1_1e1_2_0")

	w, err := NewDeltaWriter(schema, dir)
	if err != nil {
		t.Fatalf("NewDeltaWriter failed: %v", err)
	}
	if err := w.WriteBatch(testBatch(t, schema)); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	dataPath := filepath.Join(dir, "data.parquet")
	info, err := os.Stat(dataPath)
	if err != nil {
		t.Fatalf("data file missing: %v", err)
	}

	logPath := filepath.Join(dir, "_delta_log", "00000000000000000000.json")
	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) != 3 {
		t.Fatalf("log entries = %d, expected 3", len(lines))
	}

	t.Run("MetaData", func(t *testing.T) {
		var entry struct {
			MetaData *struct {
				ID     string `json:"id"`
				Format struct {
					Provider string `json:"provider"`
				} `json:"format"`
				SchemaString     string            `json:"schemaString"`
				Configuration    map[string]string `json:"configuration"`
				PartitionColumns []string          `json:"partitionColumns"`
			} `json:"metaData"`
		}
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("decoding metaData failed: %v", err)
		}
		if entry.MetaData == nil {
			t.Fatalf("first entry is not metaData: %s", lines[0])
		}
		if entry.MetaData.ID == "" {
			t.Errorf("metaData id is empty")
		}
		if entry.MetaData.Format.Provider != "parquet" {
			t.Errorf("provider = %q, expected parquet", entry.MetaData.Format.Provider)
		}
		if entry.MetaData.Configuration == nil || len(entry.MetaData.Configuration) != 0 {
			t.Errorf("configuration = %v, expected {}", entry.MetaData.Configuration)
		}
		if entry.MetaData.PartitionColumns == nil || len(entry.MetaData.PartitionColumns) != 0 {
			t.Errorf("partitionColumns = %v, expected []", entry.MetaData.PartitionColumns)
		}

		var schemaString struct {
			Type   string `json:"type"`
			Fields []struct {
				Name     string `json:"name"`
				Type     string `json:"type"`
				Nullable bool   `json:"nullable"`
			} `json:"fields"`
		}
		if err := json.Unmarshal([]byte(entry.MetaData.SchemaString), &schemaString); err != nil {
			t.Fatalf("decoding schemaString failed: %v", err)
		}
		if schemaString.Type != "struct" {
			t.Errorf("schemaString type = %q, expected struct", schemaString.Type)
		}
		want := []struct {
			name     string
			logical  string
			nullable bool
		}{
			{"id1", "string", true},
			{"id4", "long", true},
			{"v3", "double", false},
		}
		if len(schemaString.Fields) != len(want) {
			t.Fatalf("schemaString fields = %d, expected %d", len(schemaString.Fields), len(want))
		}
		for i, w := range want {
			f := schemaString.Fields[i]
			if f.Name != w.name || f.Type != w.logical || f.Nullable != w.nullable {
				t.Errorf("field %d = %+v, expected %+v", i, f, w)
			}
		}
	})

	t.Run("Add", func(t *testing.T) {
		var entry struct {
			Add *struct {
				Path             string            `json:"path"`
				PartitionValues  map[string]string `json:"partitionValues"`
				Size             int64             `json:"size"`
				ModificationTime int64             `json:"modificationTime"`
				DataChange       bool              `json:"dataChange"`
			} `json:"add"`
		}
		if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
			t.Fatalf("decoding add failed: %v", err)
		}
		if entry.Add == nil {
			t.Fatalf("second entry is not add: %s", lines[1])
		}
		if entry.Add.Path != "data.parquet" {
			t.Errorf("path = %q, expected data.parquet", entry.Add.Path)
		}
		if entry.Add.Size != info.Size() {
			t.Errorf("size = %d, expected %d", entry.Add.Size, info.Size())
		}
		if entry.Add.ModificationTime <= 0 {
			t.Errorf("modificationTime = %d, expected epoch milliseconds", entry.Add.ModificationTime)
		}
		if !entry.Add.DataChange {
			t.Errorf("dataChange = false, expected true")
		}
	})

	t.Run("Protocol", func(t *testing.T) {
		var entry struct {
			Protocol *struct {
				MinReaderVersion int `json:"minReaderVersion"`
				MinWriterVersion int `json:"minWriterVersion"`
			} `json:"protocol"`
		}
		if err := json.Unmarshal([]byte(lines[2]), &entry); err != nil {
			t.Fatalf("decoding protocol failed: %v", err)
		}
		if entry.Protocol == nil {
			t.Fatalf("third entry is not protocol: %s", lines[2])
		}
		if entry.Protocol.MinReaderVersion != 1 || entry.Protocol.MinWriterVersion != 2 {
			t.Errorf("protocol = %+v, expected reader 1 writer 2", entry.Protocol)
		}
	})
}

func TestDeltaTypeMapping(t *testing.T) {
	testCases := []struct {
		dataType vectorized.DataType
		want     string
	}{
		{vectorized.INT64, "long"},
		{vectorized.FLOAT64, "double"},
		{vectorized.STRING, "string"},
	}

	for _, tc := range testCases {
		if got := deltaType(tc.dataType); got != tc.want {
			t.Errorf("deltaType(%v) = %q, expected %q", tc.dataType, got, tc.want)
		}
	}
}
