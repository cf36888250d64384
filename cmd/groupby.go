package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrpowers-io/falsa/generator"
	"github.com/mrpowers-io/falsa/writer"
)

var groupbyCmd = &cobra.Command{
	Use:   "groupby",
	Short: "Create the H2O GroupBy dataset",
	Long: `Generate the wide GroupBy relation used for grouping and aggregation
benchmarks: three string id columns, three int id columns and three value
columns, with an optional percentage of NULLs in the id columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		printFormatInfo(params.format)

		n := params.tier.Rows()
		gen, err := generator.NewGroupBy(generator.DatasetSpec{
			N:         n,
			K:         params.k,
			NAs:       params.nas,
			Seed:      params.seed,
			BatchSize: params.batchSize,
		})
		if err != nil {
			return err
		}

		if err := os.MkdirAll(params.pathPrefix, 0755); err != nil {
			return fmt.Errorf("creating output folder %s failed: %w", params.pathPrefix, err)
		}

		name := writer.Filename(writer.DatasetGroupBy, n, params.k, params.nas, params.format)
		path := filepath.Join(params.pathPrefix, name)
		if err := writer.ClearPrevious(path, params.format); err != nil {
			return err
		}

		return writeRelation("output", gen, path, params.format, n)
	},
}

func init() {
	addGenerationFlags(groupbyCmd, 100)
	rootCmd.AddCommand(groupbyCmd)
}
