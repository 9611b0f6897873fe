// Package domainerrors defines the code-based error values shared across
// domain services and the HTTP layer.
//
// Services return these instead of raw errors so handlers can map outcomes to
// HTTP statuses without string matching, and so callers can branch on the
// class of failure:
//
//	if dErrors.Is(err, dErrors.CodeValidation) { ... }
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error. The HTTP layer maps codes to statuses.
type Code string

const (
	// CodeValidation marks rejected input (empty justification, bad field).
	CodeValidation Code = "validation_error"

	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"

	// CodeForbidden marks an authenticated caller lacking the required role.
	CodeForbidden Code = "forbidden"

	// CodeNotFound marks an unknown entity id, propagated from the owning store.
	CodeNotFound Code = "not_found"

	// CodeConflict marks an operation that lost against concurrent state.
	CodeConflict Code = "conflict"

	// CodeBadRequest marks a malformed request body or parameter.
	CodeBadRequest Code = "bad_request"

	// CodeInternal marks unexpected failures. Details are logged, not returned.
	CodeInternal Code = "internal_error"
)

// Error is a domain error carrying a machine-readable code and a
// human-readable description.
type Error struct {
	Code        Code
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// New constructs a domain error with the given code and description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Newf constructs a domain error with a formatted description.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Description: fmt.Sprintf(format, args...)}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or CodeInternal when err is not a
// domain error.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}
