package httperr

import (
	"errors"
	"fmt"
)

// ValidationError is raised locally before any store call when required
// fields are missing or malformed. Fields carries per-field messages for
// form display.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ErrValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func ErrValidationFields(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError is raised when an update or delete targets an id absent from
// the store at check time.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func ErrNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StoreError wraps any failure coming back from the document store with a
// human-readable prefix. Never retried, never swallowed.
type StoreError struct {
	Prefix string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Prefix, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func ErrStore(prefix string, err error) *StoreError {
	return &StoreError{Prefix: prefix, Err: err}
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
