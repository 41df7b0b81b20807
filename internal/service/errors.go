package service

import (
	"errors"
)

// Code classifies a service error for the handler boundary, which maps it
// onto an HTTP status.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalid
	CodeUnauthorized
	CodeForbidden
	CodeNotFound
	CodeConflict
)

// Error is a service-level error carrying a user-visible message. Anything
// that is not an *Error is treated as internal and its detail never reaches
// the caller.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Invalid(message string) *Error {
	return &Error{Code: CodeInvalid, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "Erreur serveur.", cause: cause}
}

// CodeOf extracts the code from an error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-visible message, with no detail leakage for
// unexpected errors.
func MessageOf(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "Erreur serveur."
}
