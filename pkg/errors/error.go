// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, strategy configuration, versions
//   - Protocol input errors (200-299): Malformed commands, numbers, candles and stacks
//   - Indicator errors (300-399): Technical indicator calculation errors
//   - Strategy errors (400-499): Strategy lookup and configuration errors
//   - Output errors (500-599): Failures writing decisions to the game engine
//
// Not having enough price history is not an *Error: indicators return an
// *InsufficientDataError, which callers treat as "indicator unavailable".
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeMalformedCommand, "settings requires a key and a value")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeUnknownCandleField, "unknown candle field %q", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeMalformedNumber, "invalid close price", parseErr)
//
//	// Check whether the input was malformed
//	if errors.IsMalformedInput(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsMalformedInput reports whether err was caused by unparseable protocol input.
// Malformed input is fatal for the current turn.
func IsMalformedInput(err error) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Code.IsMalformedInput() {
			return true
		}

		err = e.Cause
		if err == nil {
			return false
		}
	}

	return false
}

// InsufficientDataError represents an error when there is not enough price
// history for a calculation (e.g., an EMA requested before `period` closes exist).
type InsufficientDataError struct {
	Required  int    // Minimum data points required
	Actual    int    // Actual data points available
	Indicator string // Optional: indicator context
	Message   string // Human-readable message
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(required, actual int, indicator, message string) *InsufficientDataError {
	return &InsufficientDataError{
		Required:  required,
		Actual:    actual,
		Indicator: indicator,
		Message:   message,
	}
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, indicator, format string, args ...any) *InsufficientDataError {
	return &InsufficientDataError{
		Required:  required,
		Actual:    actual,
		Indicator: indicator,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError checks if an error is an InsufficientDataError.
// It uses errors.As to check the error chain.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
