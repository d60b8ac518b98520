// Package errors provides structured error types for the fstkit toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Categories
//
// Most codes signal programmer misuse or precondition violations and are
// fatal to the call that produced them: ErrCodeInvalidLabel,
// ErrCodeDuplicateLabel, ErrCodeNotFinal, ErrCodeNotSubsequential,
// ErrCodeNoInitialState, ErrCodeDeterminizationConflict.
//
// ErrCodeTransductionFailure is different: it is the normal "no mapping for
// this input" outcome of a transduction and every caller is expected to
// branch on it. Use IsSoft to distinguish it from the misuse codes.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLabel, "unknown state %q", label)
//	if errors.Is(err, errors.ErrCodeInvalidLabel) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph store misuse
	ErrCodeInvalidLabel   Code = "INVALID_LABEL"
	ErrCodeDuplicateLabel Code = "DUPLICATE_LABEL"
	ErrCodeNotFinal       Code = "NOT_FINAL"

	// Precondition violations
	ErrCodeNotSubsequential        Code = "NOT_SUBSEQUENTIAL"
	ErrCodeNoInitialState          Code = "NO_INITIAL_STATE"
	ErrCodeDeterminizationConflict Code = "DETERMINIZATION_CONFLICT"

	// Expected soft failure: the input has no accepting path
	ErrCodeTransductionFailure Code = "TRANSDUCTION_FAILURE"

	// Textual format errors
	ErrCodeParse Code = "PARSE_ERROR"

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

// IsSoft reports whether err is an expected transduction failure rather
// than a programmer-misuse error. Callers should treat soft failures as a
// normal outcome ("this input has no mapping") and everything else as a bug
// in the calling code or the graph definition.
func IsSoft(err error) bool {
	return Is(err, ErrCodeTransductionFailure)
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
