package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/imagecatalog/pkg/logger"
)

// Handler serves a request and returns the payload to put in the envelope.
// A non-nil error is turned into an error envelope by the Responder; handlers
// never format error bodies themselves.
type Handler func(r *http.Request) (any, error)

// Responder owns the wire format: it wraps successful results in a success
// envelope and converts every failure into an error envelope.
type Responder struct {
	logger logger.Logger
}

// NewResponder returns a Responder logging through l.
func NewResponder(l logger.Logger) *Responder {
	if l == nil {
		l = logger.NewNop()
	}
	return &Responder{logger: l}
}

// Wrap adapts h to an http.HandlerFunc.
func (rs *Responder) Wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h(r)
		if err != nil {
			rs.Fail(w, r, err)
			return
		}

		status := defaultStatus(r.Method)
		if res, ok := payload.(Result); ok {
			status, payload = res.Status, res.Data
		}
		rs.write(w, r, Success(status, payload))
	}
}

// Fail writes the error envelope for err.
func (rs *Responder) Fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Normalize(err)
	if status >= http.StatusInternalServerError {
		rs.logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Error(err),
		)
	} else {
		rs.logger.Warn(r.Context(), "request rejected",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Error(err),
		)
	}
	rs.write(w, r, Failure(status, msg))
}

// Recover converts panics in next into a 500 error envelope. If the handler
// already started the response nothing more can be sent; the panic is only
// logged.
func (rs *Responder) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapWriter(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			if rw.wroteHeader {
				rs.logger.Error(r.Context(), "panic after response started", logger.Error(err))
				return
			}
			rs.Fail(rw, r, err)
		}()
		next.ServeHTTP(rw, r)
	})
}

// NotFound answers requests that matched no route.
func (rs *Responder) NotFound() http.HandlerFunc {
	return rs.Wrap(func(r *http.Request) (any, error) {
		return nil, errRouteNotFound(r.Method, r.URL.Path)
	})
}

func (rs *Responder) write(w http.ResponseWriter, r *http.Request, env Envelope) {
	if env.Status == http.StatusNoContent {
		// HTTP forbids a body on 204; the status line carries the outcome.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body, err := json.Marshal(env)
	if err != nil {
		rs.logger.Error(r.Context(), "encode envelope failed", logger.Error(err))
		status := http.StatusInternalServerError
		body, _ = json.Marshal(Failure(status, http.StatusText(status)))
		env.Status = status
	}
	writeJSON(w, env.Status, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
