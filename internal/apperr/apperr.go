// Package apperr defines the error taxonomy shared by services and handlers.
// Services return errors built here; handlers map them to HTTP statuses with
// HTTPStatus and never leak persistence internals to the client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrConflict     = errors.New("conflict")
)

// ValidationError reports a missing or invalid required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Validation builds a ValidationError for a missing required field.
func Validation(field string) error {
	return &ValidationError{Field: field}
}

// Invalid builds a ValidationError for a present but invalid field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// kinded attaches a human-readable message to one of the sentinel kinds so
// callers can still match with errors.Is.
type kinded struct {
	msg  string
	kind error
}

func (e *kinded) Error() string { return e.msg }
func (e *kinded) Unwrap() error { return e.kind }

func NotFound(msg string) error {
	return &kinded{msg: msg, kind: ErrNotFound}
}

func Conflict(msg string) error {
	return &kinded{msg: msg, kind: ErrConflict}
}

// HTTPStatus maps a taxonomy error to its HTTP status code. Anything outside
// the taxonomy is a 500.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-visible message for err. Unexpected errors get a
// generic message; the real cause is logged server-side.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
