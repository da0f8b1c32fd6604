package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("company", "required")

	if got := err.Error(); got != "validation: company — required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "company", Message: "required"},
		{Field: "base_salary", Message: "must be positive"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestCooldownError_Message(t *testing.T) {
	t.Parallel()

	if got := (&CooldownError{DaysRemaining: 1}).Error(); got != "you can submit again in 1 day" {
		t.Errorf("singular message = %q", got)
	}
	if got := (&CooldownError{DaysRemaining: 60}).Error(); got != "you can submit again in 60 days" {
		t.Errorf("plural message = %q", got)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrValidation, ErrUnauthorized,
		ErrTooSoon, ErrCooldown, ErrNoData,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
