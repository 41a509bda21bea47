// =============================================================================
// Entry Form Tool - Record Validation
// =============================================================================
//
// Per-record rule evaluation producing a list of human-readable errors.
// The rule list and its messages are fixed and match the legacy tool
// byte-for-byte, because operators recognize them and downstream triage
// scripts grep for them.
//
// RULES (evaluated in this order; each produces one fixed message):
//   1. 访问形式, 访客姓名, 证件类型, 证件号码, 审批人学工号, 审批人姓名, 场所名称,
//      拜访人及事由 — required: fails when the trimmed value is empty.
//   2. 手机号 — required, and must be exactly 11 ASCII digits.
//
// The two datetime fields carry a form-level required marker but are not
// validated here; the authoritative required set is this rule list.
//
// Validation is pure: same record, same error list, same order. It never
// mutates the record and is invoked on demand (export, explicit check),
// not on every navigation step.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// requiredKeys are the fields checked by rule 1, in rule order.
var requiredKeys = []string{
	schema.KeyVisitType,
	schema.KeyVisitorName,
	schema.KeyIDType,
	schema.KeyIDNumber,
	schema.KeyApproverID,
	schema.KeyApproverName,
	schema.KeyLocations,
	schema.KeyPurpose,
}

// Validate evaluates all rules against one record and returns the error
// messages in rule order. An empty result means the record is valid.
func Validate(record schema.Record) []string {
	var errors []string

	for _, key := range requiredKeys {
		if strings.TrimSpace(record[key]) == "" {
			errors = append(errors, key+"不能为空")
		}
	}

	phone := record[schema.KeyPhone]
	if phone == "" {
		errors = append(errors, schema.KeyPhone+"不能为空")
	} else if !isElevenDigits(phone) {
		errors = append(errors, schema.KeyPhone+"必须是11位数字")
	}

	return errors
}

// isElevenDigits reports whether value is exactly 11 ASCII digit bytes.
func isElevenDigits(value string) bool {
	if len(value) != 11 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// =============================================================================
// SEQUENCE VALIDATION
// =============================================================================

// RecordError reports the first record in a sequence that failed
// validation, with its full message list so the operator can jump straight
// to it.
type RecordError struct {
	// Index is the 0-based position of the offending record.
	Index int

	// Messages are the rule messages for that record, in rule order.
	Messages []string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("记录 %d 未通过验证: %s", e.Index+1, strings.Join(e.Messages, "；"))
}

// ValidateAll validates records in sequence order and stops at the first
// failure. Returns nil when every record is valid.
func ValidateAll(records []schema.Record) *RecordError {
	for i, record := range records {
		if messages := Validate(record); len(messages) > 0 {
			return &RecordError{Index: i, Messages: messages}
		}
	}
	return nil
}
