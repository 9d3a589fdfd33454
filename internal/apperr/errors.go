// Package apperr defines the closed set of error kinds returned by the services.
// Handlers map each kind to exactly one HTTP status.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindUnexpected covers store and infrastructure failures.
	KindUnexpected Kind = iota
	// KindValidation is malformed or missing input.
	KindValidation
	// KindConflict is a uniqueness violation (duplicate email).
	KindConflict
	// KindAuthentication is bad credentials or a missing/invalid/expired token.
	KindAuthentication
	// KindNotFound is a missing resource or a resource owned by someone else.
	KindNotFound
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// FieldError describes a single violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the error type returned by the account and notes services.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a validation error carrying every violated field.
func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// Conflict builds a conflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication builds an authentication error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NotFound builds a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Unexpected wraps an infrastructure failure. The message is safe to show to
// callers; err is only for server-side logs.
func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are unexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// As extracts an *Error from err, wrapping foreign errors as unexpected.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected("An internal error occurred", err)
}
