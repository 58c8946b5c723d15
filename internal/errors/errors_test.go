package errors

import (
	"fmt"
	"testing"
)

func TestInputErrorUnwrapsToSentinel(t *testing.T) {
	err := NewInputError("spot", -1.0, "must be positive")

	if !Is(err, ErrInputValidation) {
		t.Fatalf("expected InputError to match ErrInputValidation")
	}

	wrapped := Wrapf(err, "pricing %s", "call")
	var inputErr *InputError
	if !As(wrapped, &inputErr) {
		t.Fatalf("expected wrapped error to unwrap to *InputError")
	}
	if inputErr.Field != "spot" {
		t.Errorf("Field = %q, want spot", inputErr.Field)
	}
}

func TestStrategyErrorListsViolations(t *testing.T) {
	err := NewStrategyError("long-straddle", []string{"a", "b"})

	if got, want := err.Error(), "strategy error [long-straddle]: a; b"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(fmt.Errorf("outer: %w", err), ErrInvalidStrategy) {
		t.Errorf("expected StrategyError to match ErrInvalidStrategy")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Errorf("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Errorf("Wrapf(nil) should be nil")
	}
}
