package api

import (
	"context"
	"net/http"
)

// HelloDependencies defines the interface for the greeting.
type HelloDependencies interface {
	Hello(ctx context.Context) string
}

// HelloHandler handles the API root.
type HelloHandler struct {
	deps HelloDependencies
}

// NewHelloHandler creates a new hello handler.
func NewHelloHandler(deps HelloDependencies) *HelloHandler {
	return &HelloHandler{deps: deps}
}

// HandleHello handles GET /api requests.
func (h *HelloHandler) HandleHello(r *http.Request) (any, error) {
	return h.deps.Hello(r.Context()), nil
}
