package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation_error")
	ErrDuplicateAccount   = errors.New("duplicate_account")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)

// ValidationError carries the offending field so handlers can return a useful
// message. It unwraps to ErrValidation so callers can still use errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
