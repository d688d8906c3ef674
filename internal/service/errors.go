package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDeleteNotConfirmed = errors.New("deletion requires explicit confirmation")
	ErrRequestNotQuotable = errors.New("request is no longer accepting quotes")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrWrongOrganization  = errors.New("entity does not belong to the given organization")
)

// ValidationError reports a field-level validation failure. These are
// detected at submit time and surfaced as inline messages; they never reach
// the database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
