// =============================================================================
// Entry Form Tool - Spreadsheet Input Adapter
// =============================================================================
//
// Reads workbook source files via excelize. Only the first sheet is read;
// the approval system exports a single sheet per file. All cell values are
// read as text, and trailing empty cells omitted by the sheet reader are
// treated as empty strings during reconciliation.
//
// =============================================================================

package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// Excel imports a workbook source file.
func Excel(path string) ([]schema.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return fromRawRows(rows)
}
