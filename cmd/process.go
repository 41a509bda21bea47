// =============================================================================
// Entry Form Tool - Process Command
// =============================================================================
//
// This file defines the 'process' command: the one-shot, non-interactive
// pipeline for a single source file.
//
// COMMAND USAGE:
//   entryform process <input-file> [flags]
//
// FLAGS:
//   -o, --output       : Destination path (format inferred from extension)
//       --format       : Force the output format (csv|xlsx|json)
//       --no-banner    : Omit the descriptive banner on the CSV target
//       --skip-validation : Export without validating records first
//       --fill         : Batch-fill value, 字段=值 (repeatable)
//       --from         : 1-based record number the fill starts at
//
// PROCESSING PIPELINE:
//   1. Load the tool configuration (fill presets, format defaults)
//   2. Import the source file into canonical records
//   3. Apply batch fill (config presets merged with --fill, flags win)
//   4. Validate all records in order; the first failure aborts
//   5. Export to the destination
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hualiu-nbu/entryform/internal/config"
	"github.com/hualiu-nbu/entryform/internal/exporter"
	"github.com/hualiu-nbu/entryform/internal/pipeline"
	"github.com/hualiu-nbu/entryform/internal/schema"
	"github.com/hualiu-nbu/entryform/internal/validation"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputPath is the destination file for the export.
var outputPath string

// outputFormat forces the output format instead of inferring it.
var outputFormat string

// noBanner omits the CSV banner.
var noBanner bool

// skipValidation exports without validating first.
var skipValidation bool

// fillValues holds --fill 字段=值 pairs.
var fillValues []string

// fillFrom is the 1-based record number the batch fill starts at.
var fillFrom int

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <input-file>",
	Short: "Import, normalize, validate and export a source file",
	Long: `The process command imports a spreadsheet or CSV source file, reconciles
its columns against the canonical field schema, optionally stamps batch-fill
values across a record range, validates every record in order, and exports
the normalized result.

Validation stops at the first failing record and reports its record number
and rule messages; fix the record (or use 'entryform edit') and re-run.
Use --skip-validation to export anyway.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Destination path; the format is inferred from the extension")
	processCmd.Flags().StringVar(&outputFormat, "format", "",
		"Force the output format: csv, xlsx or json")
	processCmd.Flags().BoolVar(&noBanner, "no-banner", false,
		"Omit the descriptive banner on the CSV target")
	processCmd.Flags().BoolVar(&skipValidation, "skip-validation", false,
		"Export without validating records first")
	processCmd.Flags().StringArrayVar(&fillValues, "fill", nil,
		"Batch-fill value as 字段=值 (repeatable)")
	processCmd.Flags().IntVar(&fillFrom, "from", 0,
		"1-based record number the batch fill starts at (default 1)")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess executes the one-shot pipeline for a single input file.
func runProcess(inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	opts, err := buildExportOptions(cfg)
	if err != nil {
		return err
	}

	fill, from, err := buildFill(cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(inputPath, outputPath, opts).
		WithLogger(pipeline.NewLogger(verbose))
	if len(fill) > 0 {
		p.WithFill(fill, from)
	}

	result := p.Run()

	if result.Success {
		color.Green("✓ %s -> %s (%d 条记录)",
			inputPath, result.OutputPath, result.Stats.RecordsExported)
		return nil
	}

	// A validation failure names the offending record so the operator can
	// jump straight to it in an edit session.
	var recordErr *validation.RecordError
	if errors.As(result.Error, &recordErr) {
		color.Red("✗ 记录 %d 未通过验证:", recordErr.Index+1)
		for _, msg := range recordErr.Messages {
			fmt.Printf("    - %s\n", msg)
		}
		fmt.Printf("使用 'entryform edit %s' 修正后重试，或使用 --skip-validation 跳过验证。\n", inputPath)
		return fmt.Errorf("validation failed for record %d", recordErr.Index+1)
	}

	color.Red("✗ %s: %v", inputPath, result.Error)
	return result.Error
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// buildExportOptions merges configuration defaults with command flags.
// Flags win over configuration.
func buildExportOptions(cfg *config.Config) (exporter.Options, error) {
	opts := exporter.DefaultOptions()
	opts.Banner = !(noBanner || cfg.SkipBanner)
	opts.Validate = !(skipValidation || cfg.SkipValidation)

	format := outputFormat
	if format == "" && fileHasNoExtension(outputPath) {
		format = cfg.ExportFormat
	}
	if format != "" {
		switch exporter.Format(format) {
		case exporter.FormatCSV, exporter.FormatXLSX, exporter.FormatJSON:
			opts.Format = exporter.Format(format)
		default:
			return opts, fmt.Errorf("unknown format %q (want csv, xlsx or json)", format)
		}
	}

	return opts, nil
}

// buildFill merges configuration fill presets with --fill flags and
// resolves the 0-based start index. Flag values override preset values
// for the same field.
func buildFill(cfg *config.Config) (map[string]string, int, error) {
	fill := make(map[string]string, len(cfg.Fill)+len(fillValues))
	for key, value := range cfg.Fill {
		fill[key] = value
	}

	for _, pair := range fillValues {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, 0, fmt.Errorf("invalid --fill %q (want 字段=值)", pair)
		}
		if !schema.IsCanonicalKey(key) {
			return nil, 0, fmt.Errorf("--fill references unknown field %q", key)
		}
		if value == "" {
			return nil, 0, fmt.Errorf("--fill value for %q is empty; a fill never clears a field", key)
		}
		fill[key] = value
	}

	from := cfg.FillFrom
	if fillFrom > 0 {
		from = fillFrom
	}
	if from < 1 {
		return nil, 0, fmt.Errorf("--from must be at least 1, got %d", from)
	}

	return fill, from - 1, nil
}

// fileHasNoExtension reports whether the destination lacks an extension
// the exporter could infer a format from.
func fileHasNoExtension(path string) bool {
	if path == "" {
		return false
	}
	_, err := exporter.FormatForPath(path)
	return err != nil
}
