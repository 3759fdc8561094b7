// Package errors provides the coded error types shared by the placeviz
// renderers.
//
// Every failure a tool can report falls into one of four categories:
//   - CodeUsage: bad or missing CLI arguments, missing input file
//   - CodeMalformedRow: a single data row that cannot be decoded
//   - CodeEmptyData: a file that parses to zero usable records
//   - CodeRender: downstream drawing or file-writing failures
//
// Codes travel with the error so the binaries can pick exit behaviour
// without string matching:
//
//	if errors.Is(err, errors.CodeEmptyData) {
//	    // nothing to draw, no output file was created
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// CodeUsage marks invalid invocations: missing arguments or an input
	// file that does not exist.
	CodeUsage Code = "USAGE_ERROR"

	// CodeMalformedRow marks a single table row that could not be decoded.
	CodeMalformedRow Code = "MALFORMED_ROW"

	// CodeEmptyData marks input that parsed to zero usable records. Both
	// pipelines must detect this before computing an extent or a grid.
	CodeEmptyData Code = "EMPTY_DATA"

	// CodeRender marks failures while drawing or writing the output image.
	CodeRender Code = "RENDER_ERROR"
)

// Error is a structured error carrying a code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause so errors.Is/As keep working
// through the chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error with the given code around an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the code from err, or returns the empty string if err
// is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the human-readable message, without the code
// prefix, suitable for console output. The cause's detail is kept.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
