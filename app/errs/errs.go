package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain taxonomy. Controllers map these to HTTP
// statuses; services wrap them with context via fmt.Errorf and %w.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExternal     = errors.New("external service unavailable")
)

// ValidationError reports a missing required field or an invalid enumerated
// value. It is detected with errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
