// Package errors provides structured error types for lidkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across parsers, operations, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Reproducible diagnostics carrying the 1-based line and token of a fault
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Parse faults use the format-level codes (MALFORMED_NUMBER, INVALID_CODE,
// LENGTH_MISMATCH, ...). Operations on webs use NO_WEBS,
// PLANE_COUNT_MISMATCH and INCONSISTENT_ANGLES. The remaining codes cover
// input validation and internal failures in the CLI and server.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCode, "unknown symmetry %d", v).At(3)
//	if errors.Is(err, errors.ErrCodeInvalidCode) {
//	    // Handle bad header
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// File and format errors
	ErrCodeIO                   Code = "IO_ERROR"
	ErrCodeMalformedNumber      Code = "MALFORMED_NUMBER"
	ErrCodeInvalidCode          Code = "INVALID_CODE"
	ErrCodeLengthMismatch       Code = "LENGTH_MISMATCH"
	ErrCodeMissingMarker        Code = "MISSING_MARKER"
	ErrCodeInvalidAngles        Code = "INVALID_ANGLES"
	ErrCodeTooManyLines         Code = "TOO_MANY_LINES"
	ErrCodeUnsupportedExtension Code = "UNSUPPORTED_EXTENSION"

	// Operation errors
	ErrCodeNoWebs             Code = "NO_WEBS"
	ErrCodePlaneCountMismatch Code = "PLANE_COUNT_MISMATCH"
	ErrCodeInconsistentAngles Code = "INCONSISTENT_ANGLES"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, an optional source position and
// an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based line number, 0 when not applicable
	Token   int    // 1-based token index within the line or section, 0 when not applicable
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Diagnostic()
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Diagnostic renders the message prefixed by its source position, if any.
func (e *Error) Diagnostic() string {
	switch {
	case e.Line > 0 && e.Token > 0:
		return fmt.Sprintf("line %d, token %d: %s", e.Line, e.Token, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// At sets the 1-based line number and returns the receiver.
func (e *Error) At(line int) *Error {
	e.Line = line
	return e
}

// AtToken sets the 1-based line number and token index and returns the receiver.
func (e *Error) AtToken(line, token int) *Error {
	e.Line = line
	e.Token = token
	return e
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

// Position returns the line and token recorded on err, or zeros.
func Position(err error) (line, token int) {
	var e *Error
	if errors.As(err, &e) {
		return e.Line, e.Token
	}
	return 0, 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the positioned message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Diagnostic()
	}
	return err.Error()
}

// LengthError records a declared/actual count disagreement for an array.
type LengthError struct {
	Section  string
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected %d values, found %d", e.Section, e.Expected, e.Actual)
}

// Length builds a LENGTH_MISMATCH error at line with the counts attached as cause.
func Length(line int, section string, expected, actual int) *Error {
	le := &LengthError{Section: section, Expected: expected, Actual: actual}
	return &Error{Code: ErrCodeLengthMismatch, Message: le.Error(), Line: line, Cause: le}
}

// PlaneCountError describes a web whose plane count differs from the first.
type PlaneCountError struct {
	Expected int
	Found    int
	Index    int
}

// Error implements the error interface.
func (e *PlaneCountError) Error() string {
	return fmt.Sprintf("web %d has %d planes, expected %d", e.Index, e.Found, e.Expected)
}
