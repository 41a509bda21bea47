// =============================================================================
// Entry Form Tool - Importer
// =============================================================================
//
// This package reads heterogeneous spreadsheet/CSV input and produces the
// ordered record sequence the rest of the tool operates on. It handles:
//   - Arbitrary header variants (extra whitespace, trailing asterisks)
//   - Column permutations, supersets, and missing optional columns
//   - Export markers left by this tool's own exporter (stripped on re-import)
//   - UTF-8 and GB18030 encoded CSV input (auto-detected)
//
// RECONCILIATION:
//   Source column names are cleaned (whitespace and trailing '*' stripped)
//   and matched against the canonical field keys. Matched columns supply
//   values; unmatched canonical fields are filled with empty strings for
//   every row. Source column order and extra columns are irrelevant.
//
// ERROR CONTRACT:
//   Import is all-or-nothing. A zero-row source fails with ErrEmptySource;
//   any file read or parse failure is wrapped and returned verbatim. In
//   both cases no records are produced, so the caller's store is untouched.
//
// =============================================================================

package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// ErrEmptySource is returned when the source contains no data rows.
var ErrEmptySource = errors.New("source file contains no data rows")

// =============================================================================
// FILE DISPATCH
// =============================================================================

// File imports a source file, dispatching on the file extension.
// Supported extensions: .csv, .xlsx, .xlsm, .xls.
func File(path string) ([]schema.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV(path)
	case ".xlsx", ".xlsm", ".xls":
		return Excel(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// =============================================================================
// COLUMN RECONCILIATION
// =============================================================================

// Reconcile converts raw header and row data into canonical records.
//
// PARAMETERS:
//   - header: The source column names, in source order.
//   - rows: The data rows, each a slice of cell values in source order.
//
// RETURNS:
//   - One record per input row, in input row order, with all twelve
//     canonical keys present.
//   - ErrEmptySource if rows is empty.
func Reconcile(header []string, rows [][]string) ([]schema.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	// Map cleaned source column names to their column index. When a source
	// repeats a column name, the first occurrence wins.
	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		cleaned := schema.CleanKey(name)
		if _, exists := columnIndex[cleaned]; !exists {
			columnIndex[cleaned] = i
		}
	}

	records := make([]schema.Record, 0, len(rows))
	for _, row := range rows {
		record := schema.NewRecord()
		for _, key := range schema.Keys() {
			col, ok := columnIndex[key]
			if !ok || col >= len(row) {
				continue // Missing column or short row: stays empty.
			}
			record[key] = schema.CleanCell(key, row[col])
		}
		records = append(records, record)
	}

	return records, nil
}

// =============================================================================
// HEADER ROW DETECTION
// =============================================================================

// findHeaderRow locates the physical header row. The CSV export target
// prepends a descriptive banner, so the header is not necessarily the first
// line of a re-imported file. The first row whose cleaned cells include
// both 访客姓名 and 手机号 is taken as the header; if no such row exists, the
// first row is used.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		var hasName, hasPhone bool
		for _, cell := range row {
			switch schema.CleanKey(cell) {
			case schema.KeyVisitorName:
				hasName = true
			case schema.KeyPhone:
				hasPhone = true
			}
		}
		if hasName && hasPhone {
			return i
		}
	}
	return 0
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// fromRawRows runs header detection and reconciliation over raw sheet rows.
// Empty rows between or after data rows are skipped.
func fromRawRows(rows [][]string) ([]schema.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	headerRow := findHeaderRow(rows)
	header := rows[headerRow]

	var dataRows [][]string
	for _, row := range rows[headerRow+1:] {
		if isRowEmpty(row) {
			continue
		}
		dataRows = append(dataRows, row)
	}

	return Reconcile(header, dataRows)
}
