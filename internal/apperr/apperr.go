// Package apperr defines the application error taxonomy and its mapping
// to HTTP status codes. Handlers classify failures by Kind instead of
// matching on error strings.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	// KindValidation marks malformed or missing required input
	KindValidation Kind = iota + 1
	// KindConflict marks a uniqueness violation (duplicate email, username or slug)
	KindConflict
	// KindAuthentication marks a missing/invalid token or bad credentials
	KindAuthentication
	// KindAuthorization marks a valid identity lacking the required role or ownership
	KindAuthorization
	// KindNotFound marks a reference that does not resolve to a record
	KindNotFound
	// KindInternal marks an unexpected persistence or runtime failure
	KindInternal
)

// Error is an application error carrying a Kind and an optional
// per-field message list for validation failures
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a validation error listing each violated field
func Validation(fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Conflict creates a uniqueness-violation error
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication creates an authentication error
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Authorization creates an authorization error
func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// NotFound creates a not-found error
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logging
// but never surfaced to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From extracts an *Error from err, wrapping unknown errors as internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an application error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Status maps an error to its HTTP status code.
// Validation and conflict failures surface as 400, authentication as 401,
// authorization as 403, missing records as 404 and everything else as 500.
func Status(err error) int {
	switch From(err).Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
