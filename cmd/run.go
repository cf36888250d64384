package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mrpowers-io/falsa/core"
	"github.com/mrpowers-io/falsa/generator"
	"github.com/mrpowers-io/falsa/internal/config"
	"github.com/mrpowers-io/falsa/writer"
)

// genParams is the merged parameter set of one generation command: flag
// values, config-file and environment overrides already resolved.
type genParams struct {
	pathPrefix string
	tier       generator.SizeTier
	k          int64
	nas        uint8
	seed       uint64
	batchSize  int64
	format     writer.Format
}

func addGenerationFlags(cmd *cobra.Command, defaultK int64) {
	cmd.Flags().String("path-prefix", "", "An output folder for generated data")
	cmd.Flags().String("size", "SMALL", "Dataset size: SMALL (1e7 rows), MEDIUM (1e8), BIG (1e9)")
	cmd.Flags().Int64("k", defaultK, "An amount of keys (groups)")
	cmd.Flags().Int("nas", 0, "A percentage of NULLs")
	cmd.Flags().Uint64("seed", 42, "A seed of the generation")
	cmd.Flags().Int64("batch-size", 5_000_000, "A batch-size (in rows)")
	cmd.Flags().String("data-format", "CSV", "An output format for generated data: CSV, PARQUET, DELTA")
}

// resolveParams merges flag values with the loaded configuration. Explicit
// flags win; config-file and FALSA_* environment values override the
// built-in defaults.
func resolveParams(cmd *cobra.Command) (*genParams, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	pathPrefix, _ := flags.GetString("path-prefix")
	if !flags.Changed("path-prefix") && cfg.PathPrefix != "" {
		pathPrefix = cfg.PathPrefix
	}
	if pathPrefix == "" {
		return nil, fmt.Errorf("an output folder is required: pass --path-prefix or set path_prefix in the config")
	}

	sizeStr, _ := flags.GetString("size")
	if !flags.Changed("size") {
		sizeStr = cfg.Size
	}
	tier, err := generator.ParseSizeTier(sizeStr)
	if err != nil {
		return nil, err
	}

	k, _ := flags.GetInt64("k")
	if !flags.Changed("k") && cfg.K != 0 {
		k = cfg.K
	}

	nas, _ := flags.GetInt("nas")
	if !flags.Changed("nas") {
		nas = cfg.NAs
	}
	if nas < 0 || nas > 100 {
		return nil, fmt.Errorf("nas should be in [0, 100], but got %d", nas)
	}

	seed, _ := flags.GetUint64("seed")
	if !flags.Changed("seed") {
		seed = cfg.Seed
	}

	batchSize, _ := flags.GetInt64("batch-size")
	if !flags.Changed("batch-size") {
		batchSize = cfg.BatchSize
	}

	formatStr, _ := flags.GetString("data-format")
	if !flags.Changed("data-format") {
		formatStr = cfg.DataFormat
	}
	format, err := writer.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	core.GetTracer().Info(core.TraceComponentCLI, "parameters resolved", core.TraceContext(
		"size", tier.String(), "k", k, "nas", nas, "seed", seed, "batchSize", batchSize, "format", format.String()))

	return &genParams{
		pathPrefix: pathPrefix,
		tier:       tier,
		k:          k,
		nas:        uint8(nas),
		seed:       seed,
		batchSize:  batchSize,
		format:     format,
	}, nil
}

func printFormatInfo(format writer.Format) {
	fmt.Printf("An output format is %s\n\n", color.GreenString(format.String()))
	fmt.Println("Batch mode is supported.")
	fmt.Printf("In case of memory problems you can try to reduce a %s.\n\n", color.GreenString("batch-size"))
}

// writeRelation streams every batch of gen into one output target, with a
// progress bar ticking once per written batch. A batch failure aborts the
// relation; nothing is retried.
func writeRelation(label string, gen *generator.Generator, path string, format writer.Format, rows int64) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("%s rows will be saved into: %s\n\n", humanize.Comma(rows), color.GreenString(abs))
	fmt.Printf("An %s data %s is the following:\n", label, color.GreenString("schema"))
	fmt.Println(gen.Schema())
	fmt.Println()

	w, err := writer.NewWriter(format, gen.Schema(), path)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(gen.NumBatches()), "generating")
	for gen.Next() {
		if err := w.WriteBatch(gen.Batch()); err != nil {
			w.Close()
			return err
		}
		bar.Add(1)
	}
	if err := gen.Error(); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	fmt.Println()
	return nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
