// Package errors provides coded errors for the wp2ghost converter.
//
// Usage:
//
//	// In the pipeline - return typed errors
//	if err := decoder.Decode(&item); err != nil {
//	    return errors.Wrap(err, errors.CodeStream, "read wordpress export")
//	}
//
//	// In the CLI - pick the exit status from the code
//	var convErr *errors.Error
//	if errors.As(err, &convErr) {
//	    os.Exit(convErr.Code.ExitStatus())
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the converter.
const (
	CodeStream     Code = "STREAM"
	CodeValidation Code = "VALIDATION"
	CodeIO         Code = "IO"
	CodeInternal   Code = "INTERNAL"
)

// ExitStatus returns the process exit status for a code.
func (c Code) ExitStatus() int {
	switch c {
	case CodeValidation:
		return 2
	case CodeStream:
		return 3
	case CodeIO:
		return 4
	default:
		return 1
	}
}

// Error is a converter error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrStream     = &Error{Code: CodeStream, Message: "stream error"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrIO         = &Error{Code: CodeIO, Message: "io error"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
