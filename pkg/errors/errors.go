// Package errors provides structured error types for plasmidmap.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI, and preview server
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three families:
//   - Configuration errors (INVALID_LENGTH, INVALID_TICK_COUNT, OUT_OF_BOUNDS, ...):
//     invalid map-level configuration, rejected before any layout work
//   - Geometry errors (INVALID_SPAN, INVALID_DIRECTION, INVALID_POSITION):
//     malformed feature geometry, rejected at feature construction
//   - Operational errors (INVALID_FORMAT, FILE_NOT_FOUND, INTERNAL_ERROR):
//     surfaced by the pipeline and sinks
//
// Cosmetic overflow (a curved label that cannot fit its span) is deliberately
// NOT an error; see the layout package's degrade-gracefully policy.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLength, "plasmid length must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidLength) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open map file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: invalid map-level input, caught at
	// construction or setter time.
	ErrCodeInvalidLength     Code = "INVALID_LENGTH"
	ErrCodeInvalidTickCount  Code = "INVALID_TICK_COUNT"
	ErrCodeInvalidTickStyle  Code = "INVALID_TICK_STYLE"
	ErrCodeInvalidFontSize   Code = "INVALID_FONT_SIZE"
	ErrCodeInvalidLineWidth  Code = "INVALID_LINE_WIDTH"
	ErrCodeInvalidLabelStyle Code = "INVALID_LABEL_STYLE"
	ErrCodeInvalidOrbit      Code = "INVALID_ORBIT"
	ErrCodeOutOfBounds       Code = "OUT_OF_BOUNDS"

	// Geometry errors: malformed feature geometry, caught at feature
	// construction.
	ErrCodeInvalidSpan      Code = "INVALID_SPAN"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidPosition  Code = "INVALID_POSITION"

	// Input / output errors
	ErrCodeInvalidMapFile Code = "INVALID_MAP_FILE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsConfiguration reports whether err carries a configuration error code.
// Configuration errors describe invalid map-level input: plasmid length,
// tick settings, style values, or a feature placed outside the plasmid.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidLength, ErrCodeInvalidTickCount, ErrCodeInvalidTickStyle,
		ErrCodeInvalidFontSize, ErrCodeInvalidLineWidth, ErrCodeInvalidLabelStyle,
		ErrCodeInvalidOrbit, ErrCodeOutOfBounds:
		return true
	}
	return false
}

// IsGeometry reports whether err carries a geometry error code.
// Geometry errors describe a malformed feature: an inverted span or an
// unrecognized direction.
func IsGeometry(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidSpan, ErrCodeInvalidDirection, ErrCodeInvalidPosition:
		return true
	}
	return false
}
