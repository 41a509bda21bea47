// =============================================================================
// Entry Form Tool - CSV Input Adapter
// =============================================================================
//
// Reads CSV source files. Input may be UTF-8 (with or without BOM) or the
// regional GB18030 encoding used by older exports; decoding is attempted as
// UTF-8 first and falls back to GB18030. All cell values are read as text.
//
// =============================================================================

package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// utf8BOM is the byte order mark some spreadsheet tools prepend to UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV imports a CSV source file.
func CSV(path string) ([]schema.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	decoded, err := decodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	configureReader(reader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return fromRawRows(rows)
}

// configureReader configures the CSV reader for the loosely formatted
// files this tool receives.
func configureReader(reader *csv.Reader) {
	// Allow variable number of fields per row. Hand-edited files often
	// have inconsistent column counts.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Trim leading space from fields.
	reader.TrimLeadingSpace = true
}

// decodeBytes converts raw file bytes to UTF-8. Valid UTF-8 passes through
// unchanged (after BOM removal); everything else is decoded as GB18030.
func decodeBytes(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		return raw, nil
	}

	decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("not valid UTF-8 or GB18030: %w", err)
	}
	return decoded, nil
}
