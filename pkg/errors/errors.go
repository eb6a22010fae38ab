// Package errors provides structured error types for caseforge.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across generation and validation
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The taxonomy mirrors how errors must be handled:
//   - INVALID_*: configuration rejected before any generation work
//   - STRUCTURAL_INVARIANT: a synthesized graph violated its own guarantee;
//     the run aborts and no corpus is emitted
//   - PROCESS_FAILURE: the candidate subprocess failed (distinct from a
//     wrong answer — needs different remediation)
//   - CONTENT_MISMATCH: candidate output differs from the expectation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "edge count %d infeasible", m)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Reject before generating
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeProcessFailure, origErr, "candidate %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors, rejected before generation starts
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidTask    Code = "INVALID_TASK"
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"

	// Generation errors
	ErrCodeStructuralInvariant Code = "STRUCTURAL_INVARIANT"

	// Validation errors
	ErrCodeProcessFailure  Code = "PROCESS_FAILURE"
	ErrCodeContentMismatch Code = "CONTENT_MISMATCH"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeStorage  Code = "STORAGE_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
