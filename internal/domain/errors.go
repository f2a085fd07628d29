package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
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

// Message joins the distinct field messages into one human-readable line.
func (e *ValidationError) Message() string {
	seen := make(map[string]bool, len(e.Errors))
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if seen[fe.Message] {
			continue
		}
		seen[fe.Message] = true
		parts = append(parts, fe.Message)
	}
	return strings.Join(parts, "; ")
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AccessError is returned when the actor has no session or does not own
// the record being mutated. Reason is shown to the caller verbatim.
type AccessError struct {
	Reason string
	// Forbidden is true for ownership failures, false for a missing session.
	Forbidden bool
}

func (e *AccessError) Error() string { return "Unauthorized: " + e.Reason }

func (e *AccessError) Unwrap() error {
	if e.Forbidden {
		return ErrForbidden
	}
	return ErrUnauthorized
}

// Unauthenticated creates an AccessError for a request without a session.
func Unauthenticated(reason string) *AccessError {
	return &AccessError{Reason: reason}
}

// NotOwner creates an AccessError for an ownership mismatch.
func NotOwner(reason string) *AccessError {
	return &AccessError{Reason: reason, Forbidden: true}
}

// NotFoundError names the missing entity in a caller-facing message.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ErrorKind classifies an action failure so callers can branch without
// parsing messages.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindValidation   ErrorKind = "VALIDATION"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindPersistence  ErrorKind = "PERSISTENCE"
)

func (k ErrorKind) String() string { return string(k) }

// KindOf maps an error chain to its ErrorKind. Anything that is not an
// access, validation or lookup failure is a persistence failure.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return KindUnauthorized
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindPersistence
	}
}
