package core

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all collections and managers. The instance caches
// struct metadata, so a single one is cheaper than per-call construction.
var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckRecord runs struct-tag validation on a record and reports the first
// violation as an ErrInvalidValue. Use it before mutating stored state so a
// rejected candidate leaves the collection untouched.
func CheckRecord(record any) error {
	if reason := firstViolation(record); reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrInvalidValue)
	}
	return nil
}

// CheckImportedRecord validates an externally supplied record (a parsed input
// line) and reports the first violation as a MalformedRecordError carrying
// the 1-based line number.
func CheckImportedRecord(record any, line int) error {
	if reason := firstViolation(record); reason != "" {
		return &MalformedRecordError{Line: line, Reason: reason}
	}
	return nil
}

func firstViolation(record any) string {
	err := validate.Struct(record)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Sprintf("field %s violates %q", f.Field(), f.Tag())
	}
	return err.Error()
}
