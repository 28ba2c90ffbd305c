package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Storage errors
	ErrMalformedRecord = errors.New("malformed stored record")
	ErrStorageClosed   = errors.New("storage is closed")
)

// ValidationError reports which required fields were missing or invalid on a
// submitted draft. It unwraps to ErrValidationFailed so callers can match the
// whole class with errors.Is.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// Unwrap implements the errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError for the given field names
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}
