package store

import "fmt"

// ValidationError reports a form field that is missing or malformed.
// Creation operations fail with it before touching any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
