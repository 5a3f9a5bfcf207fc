package apperr

import (
	"errors"
	"net/http"
)

// Sentinel errors of the borrow domain. Repositories and services return
// these (possibly wrapped), handlers map them to HTTP status codes.
var (
	// ErrNotFound — book or borrow request does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized — caller does not hold the role required for the operation.
	ErrUnauthorized = errors.New("not authorized for this operation")
	// ErrInvalidState — the operation is not legal in the entity's current status.
	ErrInvalidState = errors.New("operation not allowed in current state")
	// ErrConflict — a concurrent transition already changed the underlying
	// book/request; safe for the client to retry after re-reading.
	ErrConflict = errors.New("state changed concurrently")
	// ErrUnavailable — transient I/O or timeout; safe to retry as-is.
	ErrUnavailable = errors.New("temporarily unavailable")
)

// Code returns a stable machine-readable code for the error, used in JSON
// error bodies.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrInvalidState):
		return "InvalidState"
	case errors.Is(err, ErrConflict):
		return "Conflict"
	case errors.Is(err, ErrUnavailable):
		return "Unavailable"
	default:
		return "InternalError"
	}
}

// HTTPStatus maps an error to its HTTP status code.
// Conflict (409) and Unavailable (503) are documented as retryable.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
