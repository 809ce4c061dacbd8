package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned by read paths when no live word matches a key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on an attempt to create a word whose
	// (text, language) pair is already persisted.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation marks malformed caller input, rejected before any
	// store or provider activity.
	ErrValidation = errors.New("validation error")
	// ErrFetch marks a failure of the external translation provider:
	// unreachable, non-OK status, or a malformed response. It is never
	// folded into ErrNotFound.
	ErrFetch = errors.New("translation fetch failed")
	// ErrIntegrity marks an internal invariant violation, e.g. a word
	// missing right after its own reconciliation committed. It indicates
	// a bug, not a runtime condition callers can handle.
	ErrIntegrity = errors.New("integrity violation")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
