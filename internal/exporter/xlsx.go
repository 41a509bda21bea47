// =============================================================================
// Entry Form Tool - XLSX Export Target
// =============================================================================
//
// Single worksheet, no banner: header row of asterisk-annotated field
// names, then one row per record with the same projection and suffixing as
// the CSV target. All values are written as text cells so identifiers with
// leading zeros survive.
//
// =============================================================================

package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// writeXLSX writes the workbook target to w.
func writeXLSX(w io.Writer, records []schema.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := setTextRow(f, sheet, 1, headerRow()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		if err := setTextRow(f, sheet, i+2, dataRow(record)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// setTextRow writes one row of string cells starting at column A.
func setTextRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return f.SetSheetRow(sheet, cell, &cells)
}
