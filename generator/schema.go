package generator

import (
	"github.com/mrpowers-io/falsa/vectorized"
)

// Output schemas of the five relations. Field order is the on-disk column
// order for every format.
var (
	GroupBySchema = vectorized.NewSchema(
		&vectorized.Field{Name: "id1", DataType: vectorized.STRING, Nullable: true},
		&vectorized.Field{Name: "id2", DataType: vectorized.STRING, Nullable: true},
		&vectorized.Field{Name: "id3", DataType: vectorized.STRING, Nullable: true},
		&vectorized.Field{Name: "id4", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "id5", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "id6", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "v1", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "v2", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "v3", DataType: vectorized.FLOAT64, Nullable: false},
	)

	JoinLHSSchema = vectorized.NewSchema(
		&vectorized.Field{Name: "id1", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id2", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id3", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id4", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "id5", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "id6", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "v1", DataType: vectorized.FLOAT64, Nullable: false},
	)

	JoinRHSSmallSchema = vectorized.NewSchema(
		&vectorized.Field{Name: "id1", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id4", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "v2", DataType: vectorized.FLOAT64, Nullable: false},
	)

	JoinRHSMediumSchema = vectorized.NewSchema(
		&vectorized.Field{Name: "id1", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id2", DataType: vectorized.INT64, Nullable: false},
		&vectorized.Field{Name: "id4", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "id5", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "v2", DataType: vectorized.FLOAT64, Nullable: false},
	)

	// The big right-hand side is the one join relation honoring the null
	// percentage: its key columns and v2 are nullable.
	JoinRHSBigSchema = vectorized.NewSchema(
		&vectorized.Field{Name: "id1", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "id2", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "id3", DataType: vectorized.INT64, Nullable: true},
		&vectorized.Field{Name: "id4", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "id5", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "id6", DataType: vectorized.STRING, Nullable: false},
		&vectorized.Field{Name: "v2", DataType: vectorized.FLOAT64, Nullable: true},
	)
)
