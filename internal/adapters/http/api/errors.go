package api

import (
	"errors"
	"net/http"
)

// statusCoder is implemented by errors that know their HTTP status, such as
// *apperr.Error.
type statusCoder interface {
	HTTPStatus() int
}

// clientMessenger is implemented by errors carrying a client-safe message.
type clientMessenger interface {
	ClientMessage() string
}

// Normalize derives the response status and client message for err.
// Errors without an HTTP status become 500 with the generic status text, so
// internal details never reach the client.
func Normalize(err error) (int, string) {
	var sc statusCoder
	if err == nil || !errors.As(err, &sc) {
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	status := sc.HTTPStatus()
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	var msg string
	var cm clientMessenger
	if errors.As(err, &cm) {
		msg = cm.ClientMessage()
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return status, msg
}
