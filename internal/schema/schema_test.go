package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeysInOutputOrder(t *testing.T) {
	expected := []string{
		"访问形式", "访客姓名", "手机号", "证件类型", "证件号码", "车辆号码",
		"审批人学工号", "审批人姓名", "场所名称", "访问开始时间", "访问结束时间", "拜访人及事由",
	}
	assert.Equal(t, expected, Keys())
	assert.Len(t, Fields(), FieldCount)
}

func TestNewRecordHasAllKeys(t *testing.T) {
	r := NewRecord()
	assert.Len(t, r, FieldCount)
	for _, key := range Keys() {
		v, ok := r[key]
		assert.True(t, ok, key)
		assert.Equal(t, "", v)
	}
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"手机号*", "手机号"},
		{" 手机号* ", "手机号"},
		{"场所名称**", "场所名称"},
		{"车辆号码", "车辆号码"},
		{"  访客姓名 ", "访客姓名"},
		{"", ""},
		{"*", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanKey(tt.in), "CleanKey(%q)", tt.in)
	}
}

func TestRequiredPartitions(t *testing.T) {
	// The form marks everything but 车辆号码; the export header additionally
	// leaves 审批人学工号, 审批人姓名 and 拜访人及事由 unmarked.
	unmarkedOnExport := map[string]bool{
		KeyVehicle:      true,
		KeyApproverID:   true,
		KeyApproverName: true,
		KeyPurpose:      true,
	}
	for _, f := range Fields() {
		if f.Key == KeyVehicle {
			assert.Equal(t, f.Key, f.Label())
		} else {
			assert.Equal(t, f.Key+"*", f.Label(), f.Key)
		}
		if unmarkedOnExport[f.Key] {
			assert.Equal(t, f.Key, f.ExportHeader(), f.Key)
		} else {
			assert.Equal(t, f.Key+"*", f.ExportHeader(), f.Key)
		}
	}
}

func TestSuffixedFields(t *testing.T) {
	want := map[string]bool{
		KeyPhone:      true,
		KeyIDNumber:   true,
		KeyApproverID: true,
		KeyStartTime:  true,
		KeyEndTime:    true,
	}
	for _, f := range Fields() {
		assert.Equal(t, want[f.Key], f.Suffixed, f.Key)
	}
}

func TestNormalizeVehiclePlate(t *testing.T) {
	assert.Equal(t, "浙B12345", NormalizeVehiclePlate("浙b 123 45"))
	assert.Equal(t, "ZHA888", NormalizeVehiclePlate(" zh a 888"))
	assert.Equal(t, "", NormalizeVehiclePlate("   "))

	// Idempotent, and never leaves a space or lower-case ASCII letter.
	for _, in := range []string{"浙b 123 45", "abc def", "ALREADY", "", "沪A·12345", "a b c d e f"} {
		once := NormalizeVehiclePlate(in)
		assert.Equal(t, once, NormalizeVehiclePlate(once), "not idempotent for %q", in)
		assert.NotContains(t, once, " ")
		assert.Equal(t, strings.ToUpper(once), once)
	}
}

func TestStripMarker(t *testing.T) {
	assert.Equal(t, "13800138000", StripMarker("13800138000#"))
	assert.Equal(t, "abc#", StripMarker("abc##"), "only one marker is stripped")
	assert.Equal(t, "abc", StripMarker("abc"))
	assert.Equal(t, "", StripMarker("#"))
	assert.Equal(t, "", StripMarker(""))
}

func TestCleanCell(t *testing.T) {
	assert.Equal(t, "13800138000", CleanCell(KeyPhone, " 13800138000# "))
	assert.Equal(t, "浙B12345", CleanCell(KeyVehicle, " 浙b 12345 "))
	assert.Equal(t, "张三", CleanCell(KeyVisitorName, "张三"))
}

func TestLocationsEncoding(t *testing.T) {
	assert.Equal(t, []string{"东区", "梅山校区", "图书馆"}, SplitLocations("东区@梅山校区@图书馆"))
	assert.Equal(t, []string{"东区", "北区"}, SplitLocations("东区@@北区"))
	assert.Nil(t, SplitLocations(""))
	assert.Nil(t, SplitLocations("  "))

	assert.Equal(t, "东区@北区", JoinLocations([]string{"东区", "", "北区"}))
	assert.Equal(t, "", JoinLocations(nil))
}

func TestDateTimeRoundTrip(t *testing.T) {
	ts := time.Date(2026, 9, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-01 09:05", FormatDateTime(ts))

	parsed, err := ParseDateTime(" 2026-09-01 09:05 ")
	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01 09:05", FormatDateTime(parsed))

	_, err = ParseDateTime("2026/09/01 9:05")
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	r := NewRecord()
	r[KeyVisitorName] = "张三"
	c := r.Clone()
	c[KeyVisitorName] = "李四"
	assert.Equal(t, "张三", r[KeyVisitorName])
}
