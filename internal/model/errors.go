package model

import "fmt"

// ValidationError reports a survey field that is missing or out of its
// declared domain. It is the only error kind the insights pipeline produces.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Detail)
}

// NewValidationError builds a validation error for a single field
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
