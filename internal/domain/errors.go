package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when a referenced
// record (vehicle, supplier, entry) does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. non-positive litres, closing reading below opening
// reading, a second open entry for the same vehicle).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationError carries the human-readable message for a business-rule
// violation. It unwraps to ErrValidation, so errors.Is checks keep working;
// handlers use errors.As to surface Message without parsing error strings.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "validation error: " + e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
