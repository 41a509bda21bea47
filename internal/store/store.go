// =============================================================================
// Entry Form Tool - Record Store
// =============================================================================
//
// The store owns the in-memory ordered record sequence and the cursor that
// points at the record currently under edit. It is the only shared mutable
// state in the tool and lives for exactly one load/edit/export cycle.
//
// CURSOR SEMANTICS:
//   The cursor ranges over [0, Size()-1] and is meaningless while the store
//   is empty. Navigation clamps at both ends rather than erroring; jumping
//   takes the operator's 1-based record number and rejects out-of-range
//   input without moving. All navigation on an empty store is a no-op.
//
//   The edit surface is expected to persist its pending field values via
//   SaveCurrent before every navigation call (last edit wins). The store
//   does not track dirtiness.
//
// CONCURRENCY:
//   Single-threaded by design. A caller that adds concurrent access must
//   serialize all mutations behind a single writer lock; SaveCurrent,
//   ApplyBatch and cursor movement are not designed to interleave.
//
// =============================================================================

package store

import (
	"errors"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// Navigation and batch-fill errors.
var (
	// ErrIndexOutOfRange rejects a jump or batch-fill start position
	// outside the record sequence. The cursor is left unchanged.
	ErrIndexOutOfRange = errors.New("record number out of range")

	// ErrNoData is returned by operations that require a loaded store.
	ErrNoData = errors.New("no records loaded")

	// ErrNothingToApply is informational: a batch fill was requested with
	// no non-empty field values, so no record was touched.
	ErrNothingToApply = errors.New("no field values to apply")
)

// Store is the ordered record sequence plus the edit cursor.
type Store struct {
	records []schema.Record
	cursor  int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// =============================================================================
// LOADING
// =============================================================================

// Load atomically replaces the record sequence and resets the cursor to
// the first record. Callers import first and load only on success, so a
// failed import never disturbs the previous sequence.
func (s *Store) Load(records []schema.Record) {
	s.records = records
	s.cursor = 0
}

// Size returns the number of loaded records.
func (s *Store) Size() int {
	return len(s.records)
}

// Empty reports whether no records are loaded.
func (s *Store) Empty() bool {
	return len(s.records) == 0
}

// Records returns the live record sequence in canonical order. The slice
// is shared with the store; read-only callers (export) must copy before
// mutating values.
func (s *Store) Records() []schema.Record {
	return s.records
}

// =============================================================================
// CURSOR AND EDITING
// =============================================================================

// Cursor returns the 0-based cursor position. Meaningless when empty.
func (s *Store) Cursor() int {
	return s.cursor
}

// Current returns the record under the cursor. The second return value is
// false when the store is empty.
func (s *Store) Current() (schema.Record, bool) {
	if s.Empty() {
		return nil, false
	}
	return s.records[s.cursor], true
}

// SaveCurrent merges field values from the edit surface into the record
// under the cursor. Values are normalized per the schema's save rules.
// A no-op when the store is empty.
func (s *Store) SaveCurrent(fields map[string]string) {
	if s.Empty() {
		return
	}
	record := s.records[s.cursor]
	for key, value := range fields {
		record[key] = schema.NormalizeSave(key, value)
	}
}

// =============================================================================
// NAVIGATION
// =============================================================================

// Next advances the cursor by one record, clamping at the last record.
// Returns whether the cursor moved.
func (s *Store) Next() bool {
	if s.cursor >= len(s.records)-1 {
		return false
	}
	s.cursor++
	return true
}

// Prev moves the cursor back one record, clamping at the first record.
// Returns whether the cursor moved.
func (s *Store) Prev() bool {
	if s.Empty() || s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// JumpTo moves the cursor to the given 1-based record number. A number
// outside [1, Size()] fails with ErrIndexOutOfRange and leaves the cursor
// unchanged. A no-op on an empty store.
func (s *Store) JumpTo(number int) error {
	if s.Empty() {
		return nil
	}
	if number < 1 || number > len(s.records) {
		return ErrIndexOutOfRange
	}
	s.cursor = number - 1
	return nil
}
