// =============================================================================
// Entry Form Tool - Batch Filler
// =============================================================================
//
// Batch fill propagates a sparse set of field values across a contiguous
// suffix of the record sequence. It is destructive and irreversible: every
// targeted field is overwritten unconditionally on every record from the
// start position to the end. The calling surface must obtain explicit
// operator confirmation (naming the fields and record count) before
// invoking it; the store performs no confirmation of its own.
//
// Fields submitted with empty values are excluded before anything is
// written — a batch fill never clears a field, it only overwrites with a
// provided value.
//
// =============================================================================

package store

import "github.com/hualiu-nbu/entryform/internal/schema"

// ApplyBatch overwrites the given field values on every record at index
// >= start (0-based) through the end of the sequence.
//
// RETURNS:
//   - The number of records touched (Size() - start).
//   - ErrNoData when the store is empty.
//   - ErrNothingToApply when no non-empty values remain after filtering.
//   - ErrIndexOutOfRange when start is outside [0, Size()-1].
func (s *Store) ApplyBatch(start int, values map[string]string) (int, error) {
	if s.Empty() {
		return 0, ErrNoData
	}

	filtered := make(map[string]string, len(values))
	for key, value := range values {
		if value != "" {
			filtered[key] = schema.NormalizeSave(key, value)
		}
	}
	if len(filtered) == 0 {
		return 0, ErrNothingToApply
	}

	if start < 0 || start >= len(s.records) {
		return 0, ErrIndexOutOfRange
	}

	for i := start; i < len(s.records); i++ {
		for key, value := range filtered {
			s.records[i][key] = value
		}
	}

	return len(s.records) - start, nil
}
