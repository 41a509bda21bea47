// =============================================================================
// Entry Form Tool - Processing Pipeline
// =============================================================================
//
// This package orchestrates the one-shot, non-interactive flow for a single
// source file: import, optional batch fill, validate, export. It is the
// batch counterpart of the interactive edit session and drives the same
// core components.
//
// PIPELINE STAGES:
//   1. Import the source file (CSV or workbook) into canonical records
//   2. Load the record store
//   3. Apply batch-fill presets, if any
//   4. Export (validating first unless disabled)
//
// Every stage runs to completion before the next starts; a failed stage
// aborts the run and leaves no output file behind.
//
// =============================================================================

package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/hualiu-nbu/entryform/internal/exporter"
	"github.com/hualiu-nbu/entryform/internal/importer"
	"github.com/hualiu-nbu/entryform/internal/store"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// InputPath is the source file that was processed.
	InputPath string

	// OutputPath is the exported file. Empty if processing failed.
	OutputPath string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one pipeline run.
type Stats struct {
	// RecordsImported is the number of records read from the source.
	RecordsImported int

	// RecordsFilled is the number of records touched by batch fill.
	RecordsFilled int

	// RecordsExported is the number of records written to the output.
	RecordsExported int

	// ProcessingTime is the time taken for the whole run.
	ProcessingTime time.Duration
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the logging interface the pipeline reports progress through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline processes one source file end to end.
type Pipeline struct {
	inputPath  string
	outputPath string
	opts       exporter.Options

	// fill holds batch-fill values applied before export; fillFrom is the
	// 0-based start index.
	fill     map[string]string
	fillFrom int

	logger Logger
}

// New creates a pipeline for one input/output pair.
func New(inputPath, outputPath string, opts exporter.Options) *Pipeline {
	return &Pipeline{
		inputPath:  inputPath,
		outputPath: outputPath,
		opts:       opts,
		logger:     NewLogger(false),
	}
}

// WithFill configures a batch fill applied to every record at index >= from
// (0-based) before export.
func (p *Pipeline) WithFill(values map[string]string, from int) *Pipeline {
	p.fill = values
	p.fillFrom = from
	return p
}

// WithLogger replaces the pipeline's logger.
func (p *Pipeline) WithLogger(logger Logger) *Pipeline {
	p.logger = logger
	return p
}

// Run executes the pipeline and reports the outcome. ProcessingTime is
// recorded for failed runs too.
func (p *Pipeline) Run() (result Result) {
	startTime := time.Now()
	result.InputPath = p.inputPath
	defer func() {
		result.Stats.ProcessingTime = time.Since(startTime)
	}()

	p.logger.Info("Processing file: %s", p.inputPath)

	// =========================================================================
	// STEP 1: IMPORT
	// =========================================================================

	records, err := importer.File(p.inputPath)
	if err != nil {
		result.Error = fmt.Errorf("import failed: %w", err)
		return result
	}

	result.Stats.RecordsImported = len(records)
	p.logger.Debug("Imported %d record(s)", len(records))

	// =========================================================================
	// STEP 2: LOAD STORE
	// =========================================================================

	recordStore := store.New()
	recordStore.Load(records)

	// =========================================================================
	// STEP 3: BATCH FILL
	// =========================================================================

	if len(p.fill) > 0 {
		filled, err := recordStore.ApplyBatch(p.fillFrom, p.fill)
		if err != nil && !errors.Is(err, store.ErrNothingToApply) {
			result.Error = fmt.Errorf("batch fill failed: %w", err)
			return result
		}
		result.Stats.RecordsFilled = filled
		p.logger.Debug("Batch fill touched %d record(s)", filled)
	}

	// =========================================================================
	// STEP 4: EXPORT
	// =========================================================================

	if err := exporter.Export(recordStore.Records(), p.outputPath, p.opts); err != nil {
		result.Error = err
		return result
	}

	result.Stats.RecordsExported = recordStore.Size()
	result.OutputPath = p.outputPath
	result.Success = true

	p.logger.Info("Exported %d record(s) to %s", recordStore.Size(), p.outputPath)

	return result
}
