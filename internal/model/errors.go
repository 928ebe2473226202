package model

import (
	"errors"
	"strings"
)

// ErrInvalidMeasurement matches every ValidationError via errors.Is.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// ReasonInvalidFields is used when fields are missing, non-numeric or non-positive.
const ReasonInvalidFields = "fields must be valid positive numbers"

// ValidationError reports input that cannot produce a metrics result.
type ValidationError struct {
	Fields []string // offending fields, by json name
	Reason string
}

// NewValidationError returns a ValidationError for the given reason and fields.
func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// Is reports whether target is ErrInvalidMeasurement.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidMeasurement
}
