package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error for HTTP translation
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInsufficientBalance
	KindAuthentication
	KindForbidden
	KindExpired
)

// Error is a typed application error carried from services to handlers
type Error struct {
	Kind    Kind
	Message string // Safe for clients
	Err     error  // Underlying cause, logged server-side only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a typed error with a client-safe message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a typed error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Convenience constructors
func Validation(message string) *Error          { return New(KindValidation, message) }
func NotFound(message string) *Error            { return New(KindNotFound, message) }
func Conflict(message string) *Error            { return New(KindConflict, message) }
func InsufficientBalance(message string) *Error { return New(KindInsufficientBalance, message) }
func Authentication(message string) *Error      { return New(KindAuthentication, message) }
func Forbidden(message string) *Error           { return New(KindForbidden, message) }
func Expired(message string) *Error             { return New(KindExpired, message) }
func Internal(err error) *Error                 { return Wrap(KindInternal, "internal server error", err) }

// KindOf extracts the kind from any error chain, defaulting to internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message for an error, or the fallback
// when the error is not a typed application error
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}

// HTTPStatus maps an error to its HTTP status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientBalance, KindExpired:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
