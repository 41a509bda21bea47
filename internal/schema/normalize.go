// =============================================================================
// Entry Form Tool - Field Normalization Rules
// =============================================================================
//
// Per-field normalization applied during import and on save from the edit
// surface:
//   - All values: surrounding whitespace trimmed, one trailing export marker
//     stripped.
//   - 车辆号码: internal spaces removed, upper-cased. Idempotent.
//   - 场所名称: encoded as '@'-separated location tokens.
//   - Datetime fields: "YYYY-MM-DD HH:MM" once written through the edit
//     surface; imported values pass through untouched until first edited.
//
// =============================================================================

package schema

import (
	"strings"
	"time"
)

// Marker is the trailing byte appended to suffixed fields at export time
// and stripped back out on import.
const Marker = "#"

// LocationSeparator joins location tokens inside the 场所名称 value.
const LocationSeparator = "@"

// DateTimeLayout is the saved form of the two datetime fields:
// zero-padded, 24-hour, minute precision.
const DateTimeLayout = "2006-01-02 15:04"

// =============================================================================
// VALUE CLEANUP
// =============================================================================

// StripMarker removes exactly one trailing export marker, if present.
// A value that legitimately ends in '#' gains one marker on export and
// loses one on import, so stripping more than one would corrupt it.
func StripMarker(value string) string {
	return strings.TrimSuffix(value, Marker)
}

// NormalizeVehiclePlate removes internal spaces from a vehicle plate and
// upper-cases it. Applied on import and on every save; idempotent.
func NormalizeVehiclePlate(value string) string {
	return strings.ToUpper(strings.ReplaceAll(value, " ", ""))
}

// CleanCell applies the import-time cleanup for one cell: trim surrounding
// whitespace, strip one trailing export marker, and normalize the vehicle
// plate field.
func CleanCell(key, value string) string {
	value = StripMarker(strings.TrimSpace(value))
	if key == KeyVehicle {
		value = NormalizeVehiclePlate(value)
	}
	return value
}

// NormalizeSave applies the save-time normalization for a value written
// through the edit surface. Vehicle plates are normalized the same way as
// on import so the record invariant holds regardless of entry path.
func NormalizeSave(key, value string) string {
	if key == KeyVehicle {
		return NormalizeVehiclePlate(value)
	}
	return value
}

// =============================================================================
// LOCATION LIST ENCODING
// =============================================================================

// SplitLocations decodes a 场所名称 value into its location tokens.
// Empty tokens are dropped, so "东区@@北区" and "东区@北区" are equivalent.
func SplitLocations(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var tokens []string
	for _, t := range strings.Split(value, LocationSeparator) {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// JoinLocations encodes location tokens into a 场所名称 value.
func JoinLocations(tokens []string) string {
	var kept []string
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, LocationSeparator)
}

// =============================================================================
// DATETIME HANDLING
// =============================================================================

// ParseDateTime parses a value in the saved datetime form.
func ParseDateTime(value string) (time.Time, error) {
	return time.Parse(DateTimeLayout, strings.TrimSpace(value))
}

// FormatDateTime renders a time in the saved datetime form.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
