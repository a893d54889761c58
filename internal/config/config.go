// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers an optional YAML file and IMGCAT_ env vars over the defaults.
// - External errors must be wrapped via this package's error sentinels.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":3000".
	Addr string `koanf:"addr"`

	// CatalogPath points at a JSON catalog file. Empty means the built-in catalog.
	CatalogPath string `koanf:"catalog_path"`

	// DocsEnabled mounts the API reference at /api-docs.
	DocsEnabled bool `koanf:"docs_enabled"`

	// DocsScriptURL overrides where the docs page loads ReDoc from. Empty
	// uses the public CDN.
	DocsScriptURL string `koanf:"docs_script_url"`

	// ShutdownTimeoutMS bounds graceful shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`
}

// New creates a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":3000",
		CatalogPath:       "",
		DocsEnabled:       true,
		ShutdownTimeoutMS: 30_000,
	}
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}
