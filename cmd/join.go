package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrpowers-io/falsa/generator"
	"github.com/mrpowers-io/falsa/writer"
)

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Create the H2O Join dataset family",
	Long: `Generate the four Join relations: the left-hand side plus right-hand
sides at three cardinalities (n/1e6, n/1e3 and n rows). All four share one
partitioned key universe, so roughly 90% of left-side keys find a match on
the right side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		printFormatInfo(params.format)

		n := params.tier.Rows()
		seeds := generator.NewSeedDeriver(params.seed)
		keysSeed := seeds.Next()
		generationSeed := seeds.Next()

		nSmall := n / writer.DatasetJoinSmall.Divisor()
		nMedium := n / writer.DatasetJoinMedium.Divisor()

		spec := func(nRows int64) generator.DatasetSpec {
			return generator.DatasetSpec{
				N:         n,
				NRows:     nRows,
				K:         params.k,
				NAs:       params.nas,
				Seed:      generationSeed,
				KeysSeed:  keysSeed,
				BatchSize: minInt64(params.batchSize, nRows),
			}
		}

		// All four relations derive their pools from one keys seed, so the
		// LHS and RHS reference a consistent key universe.
		small, err := generator.NewJoinRHSSmall(spec(nSmall))
		if err != nil {
			return err
		}
		medium, err := generator.NewJoinRHSMedium(spec(nMedium))
		if err != nil {
			return err
		}
		big, err := generator.NewJoinRHSBig(spec(n))
		if err != nil {
			return err
		}
		lhs, err := generator.NewJoinLHS(spec(n))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(params.pathPrefix, 0755); err != nil {
			return fmt.Errorf("creating output folder %s failed: %w", params.pathPrefix, err)
		}

		relations := []struct {
			label   string
			gen     *generator.Generator
			dataset writer.Dataset
			rows    int64
		}{
			{"SMALL", small, writer.DatasetJoinSmall, nSmall},
			{"MEDIUM", medium, writer.DatasetJoinMedium, nMedium},
			{"BIG", big, writer.DatasetJoinBig, n},
			{"LHS", lhs, writer.DatasetJoinLHS, n},
		}

		paths := make([]string, len(relations))
		for i, rel := range relations {
			name := writer.Filename(rel.dataset, n, params.k, params.nas, params.format)
			paths[i] = filepath.Join(params.pathPrefix, name)
			if err := writer.ClearPrevious(paths[i], params.format); err != nil {
				return err
			}
		}

		for i, rel := range relations {
			if err := writeRelation(rel.label, rel.gen, paths[i], params.format, rel.rows); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	addGenerationFlags(joinCmd, 10)
	rootCmd.AddCommand(joinCmd)
}
