// Package apperr provides structured error types shared by the CLI and the
// HTTP server.
//
// Error codes let both surfaces classify failures the same way: the CLI
// chooses exit messaging and the server chooses status codes from the code,
// not from string matching. Generation failures are expected, recoverable
// conditions; the codes distinguish "no puzzle possible" from "malformed
// input".
//
// Usage:
//
//	err := apperr.New(apperr.CodeInvalidWordList, "unsupported format %q", ext)
//	if apperr.Is(err, apperr.CodeInvalidWordList) {
//	    // handle validation error
//	}
//
//	err := apperr.Wrap(apperr.CodeGeneration, genErr, "generate %d words", n)
package apperr

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Input validation failures
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidWordList Code = "INVALID_WORD_LIST"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidOptions  Code = "INVALID_OPTIONS"
	CodeInvalidPuzzle   Code = "INVALID_PUZZLE"

	// Generation failures (expected, recoverable)
	CodeGeneration Code = "GENERATION_FAILED"

	// Resource not found
	CodeNotFound       Code = "NOT_FOUND"
	CodePuzzleNotFound Code = "PUZZLE_NOT_FOUND"
	CodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Backend failures
	CodeStore Code = "STORE_ERROR"
	CodeCache Code = "CACHE_ERROR"

	// Unexpected internal errors
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable error code
	Message string // human-readable message
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error chain holds no *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error values, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
