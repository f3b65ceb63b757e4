package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no user matches the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidID is returned when an identifier is not a valid UUID.
	ErrInvalidID = errors.New("invalid id format")
	// ErrEmailTaken is returned when an email already belongs to a stored user.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrEmailDomain is returned when an email's domain cannot receive mail.
	ErrEmailDomain = errors.New("invalid email domain")
)

// ValidationError reports a single field failing a constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
