package secfilings

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic across the application. Per-filing
// extraction failures map to EMALFORMED, ENOBOUNDARY or ENOSPAN; the
// batch layer converts all of them into failure records rather than
// letting them escape.
const (
	EINVALID    = "invalid"
	ENOTFOUND   = "not_found"
	EMALFORMED  = "malformed_document"
	ENOBOUNDARY = "boundary_not_found"
	ENOSPAN     = "span_not_found"
	EINTERNAL   = "internal"
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("secfilings error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an *Error.
// It returns EINTERNAL for non-application errors and an empty string
// for a nil error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an *Error.
// It returns a generic message for non-application errors and an empty
// string for a nil error.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
