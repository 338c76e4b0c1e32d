package core

import (
	"errors"
	"fmt"
)

// Common errors.
//
// Every failure a collection or manager reports wraps exactly one of these
// sentinels, so callers branch with errors.Is instead of matching strings.
var (
	// ErrDuplicateKey signals an insert with an identifier that is already taken.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound signals a lookup, removal or update referencing an unknown identifier.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidValue signals a proposed mutation that violates a domain constraint
	// (e.g. a negative quantity). The stored record is left untouched.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedRecord signals an externally supplied record that is missing
	// required fields or has a field of the wrong shape.
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedRecordError describes a rejected input record, typically a parsed
// text line during a bulk import. Line is 1-based.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, ErrMalformedRecord)
}

// Unwrap lets errors.Is(err, ErrMalformedRecord) match.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
