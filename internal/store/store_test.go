package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// makeRecords builds n records whose visitor names identify their position.
func makeRecords(n int) []schema.Record {
	records := make([]schema.Record, n)
	for i := range records {
		r := schema.NewRecord()
		r[schema.KeyVisitorName] = string(rune('A' + i))
		records[i] = r
	}
	return records
}

func TestLoadResetsCursor(t *testing.T) {
	s := New()
	s.Load(makeRecords(3))
	assert.NoError(t, s.JumpTo(3))
	assert.Equal(t, 2, s.Cursor())

	s.Load(makeRecords(2))
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 2, s.Size())
}

func TestNavigationClampsAtBounds(t *testing.T) {
	s := New()
	s.Load(makeRecords(2))

	assert.False(t, s.Prev(), "prev at first record is a no-op")
	assert.Equal(t, 0, s.Cursor())

	assert.True(t, s.Next())
	assert.False(t, s.Next(), "next at last record is a no-op")
	assert.Equal(t, 1, s.Cursor())

	assert.True(t, s.Prev())
	assert.Equal(t, 0, s.Cursor())
}

func TestEmptyStoreNoOps(t *testing.T) {
	s := New()

	assert.True(t, s.Empty())
	assert.False(t, s.Next())
	assert.False(t, s.Prev())
	assert.NoError(t, s.JumpTo(5), "jump on an empty store is a no-op")

	_, ok := s.Current()
	assert.False(t, ok)

	// SaveCurrent on an empty store must not panic.
	s.SaveCurrent(map[string]string{schema.KeyVisitorName: "张三"})
}

func TestJumpToBounds(t *testing.T) {
	s := New()
	s.Load(makeRecords(3))
	assert.NoError(t, s.JumpTo(2))

	assert.ErrorIs(t, s.JumpTo(0), ErrIndexOutOfRange)
	assert.Equal(t, 1, s.Cursor(), "failed jump leaves the cursor")

	assert.ErrorIs(t, s.JumpTo(4), ErrIndexOutOfRange)
	assert.Equal(t, 1, s.Cursor())

	assert.NoError(t, s.JumpTo(1))
	assert.Equal(t, 0, s.Cursor())
}

func TestSaveCurrentMergesAndNormalizes(t *testing.T) {
	s := New()
	s.Load(makeRecords(2))

	s.SaveCurrent(map[string]string{
		schema.KeyVehicle: "浙b 123 45",
		schema.KeyPhone:   "13800138000",
	})

	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "浙B12345", current[schema.KeyVehicle])
	assert.Equal(t, "13800138000", current[schema.KeyPhone])
	assert.Equal(t, "A", current[schema.KeyVisitorName], "unmentioned fields survive the merge")

	// The second record is untouched.
	assert.Equal(t, "", s.Records()[1][schema.KeyPhone])
}

func TestApplyBatchSuffix(t *testing.T) {
	s := New()
	s.Load(makeRecords(5))

	before := make([]schema.Record, 2)
	for i := range before {
		before[i] = s.Records()[i].Clone()
	}

	touched, err := s.ApplyBatch(2, map[string]string{
		schema.KeyApproverName: "王五",
		schema.KeyVehicle:      "", // Empty values never clear a field.
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, touched)

	for i, r := range s.Records() {
		if i < 2 {
			assert.Equal(t, before[i], r, "record %d before the start index changed", i)
		} else {
			assert.Equal(t, "王五", r[schema.KeyApproverName])
			assert.Equal(t, "", r[schema.KeyVehicle])
			assert.Equal(t, string(rune('A'+i)), r[schema.KeyVisitorName], "unfilled field changed")
		}
	}
}

func TestApplyBatchNormalizesVehicle(t *testing.T) {
	s := New()
	s.Load(makeRecords(1))

	touched, err := s.ApplyBatch(0, map[string]string{schema.KeyVehicle: "zh a1"})
	assert.NoError(t, err)
	assert.Equal(t, 1, touched)
	assert.Equal(t, "ZHA1", s.Records()[0][schema.KeyVehicle])
}

func TestApplyBatchErrors(t *testing.T) {
	empty := New()
	_, err := empty.ApplyBatch(0, map[string]string{schema.KeyApproverName: "王五"})
	assert.ErrorIs(t, err, ErrNoData)

	s := New()
	s.Load(makeRecords(3))

	_, err = s.ApplyBatch(0, map[string]string{schema.KeyApproverName: ""})
	assert.ErrorIs(t, err, ErrNothingToApply)

	_, err = s.ApplyBatch(-1, map[string]string{schema.KeyApproverName: "王五"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.ApplyBatch(3, map[string]string{schema.KeyApproverName: "王五"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// None of the failed calls touched anything.
	for _, r := range s.Records() {
		assert.Equal(t, "", r[schema.KeyApproverName])
	}
}
