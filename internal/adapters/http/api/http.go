// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/imagecatalog/internal/domain/apperr"
	"github.com/okian/imagecatalog/internal/domain/model"
	"github.com/okian/imagecatalog/pkg/logger"
	"github.com/okian/imagecatalog/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Image mirrors the record shape returned by catalog queries.
type Image = model.Image

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	HelloDependencies
	ImagesDependencies
	HealthDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	responder     *Responder
	logger        logger.Logger
	helloHandler  *HelloHandler
	imagesHandler *ImagesHandler
	healthHandler *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, l logger.Logger) *Server {
	if l == nil {
		l = logger.NewNop()
	}
	return &Server{
		responder:     NewResponder(l),
		logger:        l,
		helloHandler:  NewHelloHandler(deps),
		imagesHandler: NewImagesHandler(deps),
		healthHandler: NewHealthHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Every route except /metrics goes
// through the Responder, including the catch-all for unmatched requests.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /api", s.route("api_hello", s.helloHandler.HandleHello))
	mux.HandleFunc("GET /api/images", s.route("api_images", s.imagesHandler.HandleList))
	mux.HandleFunc("GET /api/images/{id}", s.route("api_image", s.imagesHandler.HandleGet))
	mux.HandleFunc("GET /healthz", s.route("healthz", s.healthHandler.HandleHealth))
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/", MetricsMiddleware(s.responder.NotFound(), "not_found"))
}

// Handler wraps next with the cross-cutting middleware chain:
// request id, access log, then panic recovery.
func (s *Server) Handler(next http.Handler) http.Handler {
	return Chain(next,
		RequestID,
		AccessLog(s.logger),
		s.responder.Recover,
	)
}

// route guards h with its own Recover so MetricsMiddleware observes the 500
// written for a panicking handler.
func (s *Server) route(endpoint string, h Handler) http.HandlerFunc {
	return MetricsMiddleware(s.responder.Recover(s.responder.Wrap(h)).ServeHTTP, endpoint)
}

func errRouteNotFound(method, path string) error {
	return apperr.NotFound("api.route", fmt.Sprintf("Cannot %s %s", method, path))
}
