// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors
var (
	ErrInputValidation = errors.New("input validation failed")
	ErrInvalidStrategy = errors.New("invalid strategy legs")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrConfigInvalid   = errors.New("invalid configuration")
)

// InputError represents a caller contract violation such as a non-positive
// spot price or a negative time to expiry.
type InputError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInputValidation
}

// NewInputError creates a new InputError.
func NewInputError(field string, value interface{}, message string) *InputError {
	return &InputError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// StrategyError is returned when a curve or metric is requested for a leg
// set that fails validation.
type StrategyError struct {
	StrategyID string
	Violations []string
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy error [%s]: %s", e.StrategyID, strings.Join(e.Violations, "; "))
}

func (e *StrategyError) Unwrap() error {
	return ErrInvalidStrategy
}

// NewStrategyError creates a new StrategyError.
func NewStrategyError(strategyID string, violations []string) *StrategyError {
	return &StrategyError{
		StrategyID: strategyID,
		Violations: violations,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
