// Package apperr defines the error kinds shared by the service and the HTTP
// layer. Each kind maps to exactly one HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

// Sentinel kinds. Match them with errors.Is.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
)

// Error is a domain error carrying a client-facing message.
type Error struct {
	Op      string // operation that failed, e.g. "service.get_image"
	Kind    error  // one of the sentinel kinds
	Message string // safe to return to clients
	Err     error  // optional underlying cause, never shown to clients
}

// New returns an *Error of the given kind.
func New(op string, kind error, msg string) *Error {
	return &Error{Op: op, Kind: kind, Message: msg}
}

// Wrap returns an *Error of the given kind wrapping cause.
func Wrap(op string, kind error, msg string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Message: msg, Err: cause}
}

// NotFound is shorthand for New(op, ErrNotFound, msg).
func NotFound(op, msg string) *Error { return New(op, ErrNotFound, msg) }

// BadRequest is shorthand for New(op, ErrBadRequest, msg).
func BadRequest(op, msg string) *Error { return New(op, ErrBadRequest, msg) }

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// HTTPStatus maps the kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch {
	case errors.Is(e.Kind, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(e.Kind, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message to expose to clients, falling back to the
// status text when none was set.
func (e *Error) ClientMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.HTTPStatus())
}
