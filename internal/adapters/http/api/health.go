package api

import (
	"context"
	"net/http"
)

// HealthDependencies exposes what the health check reports.
type HealthDependencies interface {
	Count(ctx context.Context) int
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps HealthDependencies
}

type healthStatus struct {
	Status string `json:"status"`
	Images int    `json:"images"`
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(r *http.Request) (any, error) {
	return healthStatus{Status: "ok", Images: h.deps.Count(r.Context())}, nil
}
