// =============================================================================
// Entry Form Tool - CSV Export Target
// =============================================================================
//
// The CSV target is what the downstream ingestion system consumes. It is
// encoded as GB18030 (the regional encoding that system expects) and may
// carry a fixed 12-line descriptive banner before the header row: one line
// per canonical field, describing its semantics and constraints, padded
// with empty cells to the full column width so every physical line has the
// same shape.
//
// The importer locates the real header row by content, so a banner-bearing
// export re-imports cleanly.
//
// =============================================================================

package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// writeCSV writes the CSV target to w.
func writeCSV(w io.Writer, records []schema.Record, banner bool) error {
	encoded := transform.NewWriter(w, simplifiedchinese.GB18030.NewEncoder())
	writer := csv.NewWriter(encoded)

	if banner {
		for _, line := range bannerRows() {
			if err := writer.Write(line); err != nil {
				return fmt.Errorf("failed to write banner: %w", err)
			}
		}
	}

	if err := writer.Write(headerRow()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		if err := writer.Write(dataRow(record)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return encoded.Close()
}

// bannerRows returns the descriptive banner: one row per canonical field,
// description in the first cell, padded to the full column width.
func bannerRows() [][]string {
	fields := schema.Fields()
	rows := make([][]string, len(fields))
	for i, f := range fields {
		row := make([]string, len(fields))
		row[0] = f.Banner
		rows[i] = row
	}
	return rows
}
