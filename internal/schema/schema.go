// =============================================================================
// Entry Form Tool - Field Schema
// =============================================================================
//
// This package defines the canonical schema for campus entry application
// records: the twelve logical fields, their kinds, their choice lists, and
// the two required/optional partitions that coexist in the downstream system.
//
// REQUIRED/OPTIONAL PARTITIONS:
//   The editing form and the export header disagree on which fields carry a
//   required marker (*). Three fields (审批人学工号, 审批人姓名, 拜访人及事由) are
//   marked on the form but not in export headers. The validator's required
//   set is the authoritative one; the form marker is cosmetic. Both are kept
//   here so each surface can render its own partition.
//
// MARKER CONVENTION:
//   Five fields receive a trailing '#' on export, which the importer strips
//   on re-import. This is the only on-disk convention the tool owns.
//
// =============================================================================

package schema

import "strings"

// =============================================================================
// FIELD KINDS
// =============================================================================

// Kind describes how a field's value is edited and constrained.
type Kind int

const (
	// KindText is a plain single-line text value.
	KindText Kind = iota

	// KindChoice is a single selection from a fixed choice list.
	KindChoice

	// KindMultiChoice is a list of location tokens joined with '@'.
	// Tokens are either fixed location names or free text.
	KindMultiChoice

	// KindFreeText is a multi-line free text value.
	KindFreeText

	// KindDateTime is a "YYYY-MM-DD HH:MM" timestamp once saved from the
	// edit surface. Imported values are preserved opaquely until first
	// edited.
	KindDateTime
)

// =============================================================================
// CANONICAL FIELD KEYS
// =============================================================================

// Canonical field keys, asterisk-stripped. These identify record fields
// everywhere in the tool; the asterisked forms only appear on rendered
// surfaces (form labels, export headers).
const (
	KeyVisitType    = "访问形式"
	KeyVisitorName  = "访客姓名"
	KeyPhone        = "手机号"
	KeyIDType       = "证件类型"
	KeyIDNumber     = "证件号码"
	KeyVehicle      = "车辆号码"
	KeyApproverID   = "审批人学工号"
	KeyApproverName = "审批人姓名"
	KeyLocations    = "场所名称"
	KeyStartTime    = "访问开始时间"
	KeyEndTime      = "访问结束时间"
	KeyPurpose      = "拜访人及事由"
)

// =============================================================================
// FIELD DEFINITION
// =============================================================================

// Field is the immutable schema entry for one logical field.
type Field struct {
	// Key is the canonical (asterisk-stripped) field key.
	Key string

	// Kind describes how the value is edited and constrained.
	Kind Kind

	// Choices is the fixed choice list for KindChoice fields, and the
	// fixed location names for the KindMultiChoice field.
	Choices []string

	// FormRequired reports whether the editing form marks this field
	// with an asterisk. Cosmetic; the validator owns requiredness.
	FormRequired bool

	// ExportRequired reports whether the export header marks this field
	// with an asterisk.
	ExportRequired bool

	// Suffixed reports whether export appends the trailing '#' marker
	// to this field's values.
	Suffixed bool

	// Banner is the natural-language description emitted as this field's
	// line of the CSV header banner.
	Banner string
}

// Label returns the form label for the field: the key, with a trailing
// asterisk when the form marks it required.
func (f Field) Label() string {
	if f.FormRequired {
		return f.Key + "*"
	}
	return f.Key
}

// ExportHeader returns the export column header for the field: the key,
// with a trailing asterisk when the export schema marks it required.
func (f Field) ExportHeader() string {
	if f.ExportRequired {
		return f.Key + "*"
	}
	return f.Key
}

// =============================================================================
// CANONICAL FIELD TABLE
// =============================================================================

// fields is the canonical field set in output column order.
var fields = []Field{
	{
		Key:            KeyVisitType,
		Kind:           KindChoice,
		Choices:        []string{"公务拜访", "入校参观"},
		FormRequired:   true,
		ExportRequired: true,
		Banner:         "访问形式：公务拜访或入校参观，二选一，必填",
	},
	{
		Key:            KeyVisitorName,
		Kind:           KindText,
		FormRequired:   true,
		ExportRequired: true,
		Banner:         "访客姓名：访客真实姓名，必填",
	},
	{
		Key:            KeyPhone,
		Kind:           KindText,
		FormRequired:   true,
		ExportRequired: true,
		Suffixed:       true,
		Banner:         "手机号：11位数字的手机号码，必填，导出时末尾追加井号标记",
	},
	{
		Key:            KeyIDType,
		Kind:           KindChoice,
		Choices:        []string{"身份证", "护照"},
		FormRequired:   true,
		ExportRequired: true,
		Banner:         "证件类型：身份证或护照，二选一，必填",
	},
	{
		Key:            KeyIDNumber,
		Kind:           KindText,
		FormRequired:   true,
		ExportRequired: true,
		Suffixed:       true,
		Banner:         "证件号码：与证件类型对应的证件号码，必填，导出时末尾追加井号标记",
	},
	{
		Key:    KeyVehicle,
		Kind:   KindText,
		Banner: "车辆号码：来访车辆车牌号，自动去除空格并转为大写，选填",
	},
	{
		Key:          KeyApproverID,
		Kind:         KindText,
		FormRequired: true,
		Suffixed:     true,
		Banner:       "审批人学工号：校内审批人的学工号，导出时末尾追加井号标记",
	},
	{
		Key:          KeyApproverName,
		Kind:         KindText,
		FormRequired: true,
		Banner:       "审批人姓名：校内审批人的姓名",
	},
	{
		Key:            KeyLocations,
		Kind:           KindMultiChoice,
		Choices:        []string{"东区", "西区", "北区", "梅山校区"},
		FormRequired:   true,
		ExportRequired: true,
		Banner:         "场所名称：东区、西区、北区、梅山校区或其他场所，多个场所以@分隔，必填",
	},
	{
		Key:            KeyStartTime,
		Kind:           KindDateTime,
		FormRequired:   true,
		ExportRequired: true,
		Suffixed:       true,
		Banner:         "访问开始时间：格式为 YYYY-MM-DD HH:MM（24小时制），导出时末尾追加井号标记",
	},
	{
		Key:            KeyEndTime,
		Kind:           KindDateTime,
		FormRequired:   true,
		ExportRequired: true,
		Suffixed:       true,
		Banner:         "访问结束时间：格式为 YYYY-MM-DD HH:MM（24小时制），导出时末尾追加井号标记",
	},
	{
		Key:          KeyPurpose,
		Kind:         KindFreeText,
		FormRequired: true,
		Banner:       "拜访人及事由：被拜访人姓名及来访事由说明，必填",
	},
}

// fieldIndex maps canonical keys to their position in the field table.
var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.Key] = i
	}
	return m
}()

// =============================================================================
// SCHEMA ACCESSORS
// =============================================================================

// FieldCount is the number of canonical fields.
const FieldCount = 12

// Fields returns the canonical field set in output column order.
// The returned slice is a copy and safe to modify.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Keys returns the canonical field keys in output column order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// FieldByKey returns the field definition for a canonical key.
func FieldByKey(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// IsCanonicalKey reports whether key is one of the twelve canonical keys.
func IsCanonicalKey(key string) bool {
	_, ok := fieldIndex[key]
	return ok
}

// CleanKey converts a source column name to canonical form by stripping
// surrounding whitespace and any trailing asterisks. This is what makes
// header variants like " 手机号* " reconcile to the canonical 手机号.
func CleanKey(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, "*")
	return strings.TrimSpace(name)
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one applicant's full set of field values, keyed by canonical
// field key. A well-formed record has every canonical key present; absent
// source columns default to the empty string.
type Record map[string]string

// NewRecord returns a record with every canonical key present and empty.
func NewRecord() Record {
	r := make(Record, len(fields))
	for _, f := range fields {
		r[f.Key] = ""
	}
	return r
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
