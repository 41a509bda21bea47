// =============================================================================
// Entry Form Tool - JSON Export Target
// =============================================================================
//
// Structured record-array target: one object per record keyed by the
// un-asterisked canonical field keys, suffix markers still applied. Output
// is UTF-8 with 4-space indentation and literal non-ASCII characters (no
// escaping), matching what the downstream tooling diffs by eye.
//
// =============================================================================

package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// writeJSON writes the record-array target to w.
func writeJSON(w io.Writer, records []schema.Record) error {
	fields := schema.Fields()

	out := make([]map[string]string, len(records))
	for i, record := range records {
		obj := make(map[string]string, len(fields))
		row := dataRow(record)
		for j, f := range fields {
			obj[f.Key] = row[j]
		}
		out[i] = obj
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	return nil
}
