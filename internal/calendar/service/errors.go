package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for both unknown users and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken reports a signup collision without further detail.
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError rejects malformed input at the service boundary: bad time
// ranges, unknown subjects, empty titles, unparseable recurrence rules.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
