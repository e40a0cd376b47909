// Package service implements the business operations behind the route
// handlers. Services are plain structs holding the injected store handle.
package service

import (
	"errors"
)

var (
	// ErrNotFound is returned when an id or slug lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when an operation fails a cross-cutting
	// authorization guard.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a rejected write: a missing required field or a
// duplicate unique key. The message is shown inline on the originating form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
