package models

import (
	"errors"
	"fmt"
)

// Lookup and validation errors shared by the repository and services
var (
	// ErrValidation is wrapped by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrIndexOutOfRange indicates a contact position that does not exist
	ErrIndexOutOfRange = errors.New("contact index out of range")

	// ErrUnknownField indicates a field name that is not in the editable set
	ErrUnknownField = errors.New("unknown field")
)

// Reasons carried by a ValidationError for a value that is present but unusable
const (
	ReasonLineBreak = "must not contain line breaks"
	ReasonEdgeQuote = "must not start or end with a quote"
	ReasonEdgeComma = "must not start or end with a comma"
)

// ValidationError reports a field that cannot be stored.
// An empty Reason means a required field was left empty.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %q %s", e.Field.Label(), e.Reason)
	}
	return fmt.Sprintf("required field %q is empty", e.Field.Label())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
