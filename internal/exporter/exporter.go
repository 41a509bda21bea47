// =============================================================================
// Entry Form Tool - Exporter
// =============================================================================
//
// This package re-exports the edited record sequence as a normalized file
// with the fixed schema and formatting conventions the downstream ingestion
// system requires:
//   - Columns are exactly the twelve canonical fields in schema order,
//     headers asterisk-annotated per the export partition.
//   - Five fields receive a trailing '#' marker on every value; the
//     importer strips it on re-import, making export→import round-trippable
//     for those fields.
//   - Targets: CSV (GB18030, optional 12-line descriptive banner), XLSX
//     (single sheet, no banner), JSON (record array, un-asterisked keys,
//     human-readable indentation, literal non-ASCII).
//
// Export never mutates the in-memory records; suffixing happens on values
// copied into the output rows. All targets are written atomically: a
// failed export leaves no partial file at the destination.
//
// =============================================================================

package exporter

import (
	"errors"
	"fmt"
	"io"

	"github.com/hualiu-nbu/entryform/internal/schema"
	"github.com/hualiu-nbu/entryform/internal/validation"
	"github.com/hualiu-nbu/entryform/pkg/fileutil"
)

// ErrNoDestination is returned when no output path is supplied.
var ErrNoDestination = errors.New("no output destination supplied")

// =============================================================================
// FORMATS AND OPTIONS
// =============================================================================

// Format identifies an export target format.
type Format string

const (
	// FormatCSV is the GB18030 CSV target with the optional banner.
	FormatCSV Format = "csv"

	// FormatXLSX is the single-sheet workbook target.
	FormatXLSX Format = "xlsx"

	// FormatJSON is the structured record-array target.
	FormatJSON Format = "json"
)

// FormatForPath infers the target format from the destination extension.
func FormatForPath(path string) (Format, error) {
	switch fileutil.Extension(path) {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", fileutil.Extension(path))
	}
}

// Options contains export options.
type Options struct {
	// Format is the target format. When empty it is inferred from the
	// destination extension.
	Format Format

	// Banner controls the 12-line descriptive header banner on the CSV
	// target. Ignored by the other targets.
	Banner bool

	// Validate runs the record validator over the sequence before
	// anything is written. The scan stops at the first failing record,
	// which is returned as a *validation.RecordError.
	Validate bool
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{
		Banner:   true,
		Validate: true,
	}
}

// =============================================================================
// MAIN EXPORT FUNCTION
// =============================================================================

// Export writes the record sequence to dest.
//
// FAILURE MODES:
//   - ErrNoDestination when dest is empty.
//   - *validation.RecordError when validation is on and a record fails;
//     records are scanned in sequence order and the first failure aborts.
//   - A wrapped I/O error when the underlying write fails. No partial file
//     is left at dest in any failure case.
func Export(records []schema.Record, dest string, opts Options) error {
	if dest == "" {
		return ErrNoDestination
	}

	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatForPath(dest); err != nil {
			return err
		}
	}

	if opts.Validate {
		if err := validation.ValidateAll(records); err != nil {
			return err
		}
	}

	var write func(w io.Writer) error
	switch format {
	case FormatCSV:
		write = func(w io.Writer) error { return writeCSV(w, records, opts.Banner) }
	case FormatXLSX:
		write = func(w io.Writer) error { return writeXLSX(w, records) }
	case FormatJSON:
		write = func(w io.Writer) error { return writeJSON(w, records) }
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}

	if err := fileutil.AtomicWrite(dest, write); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	return nil
}

// =============================================================================
// COLUMN PROJECTION
// =============================================================================

// headerRow returns the asterisk-annotated export headers in schema order.
func headerRow() []string {
	fields := schema.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.ExportHeader()
	}
	return header
}

// dataRow projects one record onto the output columns, applying the
// trailing marker to suffixed fields. The record itself is not modified.
func dataRow(record schema.Record) []string {
	fields := schema.Fields()
	row := make([]string, len(fields))
	for i, f := range fields {
		value := record[f.Key]
		if f.Suffixed {
			value += schema.Marker
		}
		row[i] = value
	}
	return row
}
