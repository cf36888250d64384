package vectorized

import (
	"fmt"
	"strings"

	roaring "github.com/RoaringBitmap/roaring/v2"
)

// VectorBatch represents one batch of columnar data produced by a dataset
// generator and consumed by a writer
type VectorBatch struct {
	Schema   *Schema
	Columns  []*Vector
	RowCount int
	Capacity int
}

// Schema defines the structure of a vector batch
type Schema struct {
	Fields []*Field
}

// Field represents a column definition in the schema
type Field struct {
	Name     string
	DataType DataType
	Nullable bool
}

// DataType represents the supported column types
type DataType int

const (
	INT64 DataType = iota
	FLOAT64
	STRING
)

// Vector represents a columnar vector of data
type Vector struct {
	DataType DataType
	Data     interface{}     // Type-specific data array
	Nulls    *roaring.Bitmap // Set bits mark null positions
	Length   int
	Capacity int
}

// NewSchema creates a schema from an ordered field list
func NewSchema(fields ...*Field) *Schema {
	return &Schema{Fields: fields}
}

// FieldByName returns the named field, or nil if absent
func (s *Schema) FieldByName(name string) *Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// String renders the schema one field per line, e.g. "v1: int64 not null"
func (s *Schema) String() string {
	var b strings.Builder
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.DataType.String())
		if !f.Nullable {
			b.WriteString(" not null")
		}
	}
	return b.String()
}

// NewVectorBatch creates a new vector batch with the given schema
func NewVectorBatch(schema *Schema, capacity int) *VectorBatch {
	columns := make([]*Vector, len(schema.Fields))
	for i, field := range schema.Fields {
		columns[i] = NewVector(field.DataType, capacity)
	}

	return &VectorBatch{
		Schema:   schema,
		Columns:  columns,
		RowCount: 0,
		Capacity: capacity,
	}
}

// NewVector creates a new vector of the specified type and capacity
func NewVector(dataType DataType, capacity int) *Vector {
	vector := &Vector{
		DataType: dataType,
		Length:   0,
		Capacity: capacity,
		Nulls:    roaring.New(),
	}

	switch dataType {
	case INT64:
		vector.Data = make([]int64, 0, capacity)
	case FLOAT64:
		vector.Data = make([]float64, 0, capacity)
	case STRING:
		vector.Data = make([]string, 0, capacity)
	}

	return vector
}

// AppendInt64 appends an int64 value to the vector
func (v *Vector) AppendInt64(value int64) {
	v.Data = append(v.Data.([]int64), value)
	v.Length++
}

// AppendFloat64 appends a float64 value to the vector
func (v *Vector) AppendFloat64(value float64) {
	v.Data = append(v.Data.([]float64), value)
	v.Length++
}

// AppendString appends a string value to the vector
func (v *Vector) AppendString(value string) {
	v.Data = append(v.Data.([]string), value)
	v.Length++
}

// AppendNull appends a null entry, storing the type's zero value
func (v *Vector) AppendNull() {
	switch v.DataType {
	case INT64:
		v.Data = append(v.Data.([]int64), 0)
	case FLOAT64:
		v.Data = append(v.Data.([]float64), 0)
	case STRING:
		v.Data = append(v.Data.([]string), "")
	}
	v.Nulls.Add(uint32(v.Length))
	v.Length++
}

// GetInt64 retrieves an int64 value from the vector
func (v *Vector) GetInt64(index int) (int64, bool) {
	if v.DataType != INT64 || index >= v.Length {
		return 0, false
	}
	if v.IsNull(index) {
		return 0, false
	}
	return v.Data.([]int64)[index], true
}

// GetFloat64 retrieves a float64 value from the vector
func (v *Vector) GetFloat64(index int) (float64, bool) {
	if v.DataType != FLOAT64 || index >= v.Length {
		return 0, false
	}
	if v.IsNull(index) {
		return 0, false
	}
	return v.Data.([]float64)[index], true
}

// GetString retrieves a string value from the vector
func (v *Vector) GetString(index int) (string, bool) {
	if v.DataType != STRING || index >= v.Length {
		return "", false
	}
	if v.IsNull(index) {
		return "", false
	}
	return v.Data.([]string)[index], true
}

// IsNull checks if a position is null
func (v *Vector) IsNull(index int) bool {
	return v.Nulls.Contains(uint32(index))
}

// NullCount returns the number of null entries
func (v *Vector) NullCount() int {
	return int(v.Nulls.GetCardinality())
}

// AddRow appends one row across all columns; nil marks a null entry
func (vb *VectorBatch) AddRow(values []interface{}) error {
	if len(values) != len(vb.Columns) {
		return fmt.Errorf("value count mismatch: expected %d, got %d", len(vb.Columns), len(values))
	}

	for i, value := range values {
		col := vb.Columns[i]
		if value == nil {
			col.AppendNull()
			continue
		}
		switch col.DataType {
		case INT64:
			v, ok := value.(int64)
			if !ok {
				return fmt.Errorf("column %d expects int64, got %T", i, value)
			}
			col.AppendInt64(v)
		case FLOAT64:
			v, ok := value.(float64)
			if !ok {
				return fmt.Errorf("column %d expects float64, got %T", i, value)
			}
			col.AppendFloat64(v)
		case STRING:
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("column %d expects string, got %T", i, value)
			}
			col.AppendString(v)
		}
	}

	vb.RowCount++
	return nil
}

// GetColumn returns a column by index
func (vb *VectorBatch) GetColumn(index int) *Vector {
	if index < len(vb.Columns) {
		return vb.Columns[index]
	}
	return nil
}

// GetColumnByName returns a column by name
func (vb *VectorBatch) GetColumnByName(name string) *Vector {
	for i, field := range vb.Schema.Fields {
		if field.Name == name {
			return vb.Columns[i]
		}
	}
	return nil
}

// String returns the string representation of a data type
func (dt DataType) String() string {
	switch dt {
	case INT64:
		return "int64"
	case FLOAT64:
		return "double"
	case STRING:
		return "string"
	default:
		return "unknown"
	}
}

// Size returns the size in bytes of the data type
func (dt DataType) Size() int {
	switch dt {
	case INT64, FLOAT64:
		return 8
	case STRING:
		return 16 // Approximate for string header
	default:
		return 8
	}
}

// IsNumeric returns true if the data type is numeric
func (dt DataType) IsNumeric() bool {
	switch dt {
	case INT64, FLOAT64:
		return true
	default:
		return false
	}
}
