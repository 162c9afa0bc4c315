package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")

	if got := err.Error(); got != "validation: title: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "category", Message: "unknown value"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(ve.Errors))
	}
}

func TestNewValidationErrors_Empty(t *testing.T) {
	t.Parallel()

	if err := NewValidationErrors(nil); err != nil {
		t.Fatalf("expected nil error for no field errors, got %v", err)
	}
}

func TestValidationError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("add item: %w", NewValidationError("progress", "out of range"))
	if !errors.Is(err, ErrValidation) {
		t.Fatal("wrapped validation error should match ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("validation error must not match ErrNotFound")
	}
}
