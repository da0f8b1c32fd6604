package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTooSoon      = errors.New("submission too soon")
	ErrCooldown     = errors.New("submission cooldown active")
	ErrNoData       = errors.New("no data")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CooldownError is a policy rejection: the identity already submitted within
// the cooldown window and must wait DaysRemaining more whole days.
type CooldownError struct {
	DaysRemaining int
}

func (e *CooldownError) Error() string {
	if e.DaysRemaining == 1 {
		return "you can submit again in 1 day"
	}
	return fmt.Sprintf("you can submit again in %d days", e.DaysRemaining)
}

func (e *CooldownError) Unwrap() error { return ErrCooldown }
