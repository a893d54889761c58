// Package swagger serves the API reference: the embedded OpenAPI document and
// a ReDoc page rendering it.
package swagger

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
)

// DefaultScriptURL is the pinned ReDoc bundle the docs page loads unless
// WithScriptURL points it elsewhere.
const DefaultScriptURL = "https://cdn.redoc.ly/redoc/v2.1.5/bundles/redoc.standalone.js"

type options struct {
	scriptURL string
}

// Option configures Register.
type Option func(*options)

// WithScriptURL sets where the docs page loads ReDoc from, e.g. a copy served
// next to the binary for hosts without internet access. Empty keeps the default.
func WithScriptURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.scriptURL = url
		}
	}
}

// Register attaches the docs routes to mux.
// Routes:
//
//	GET /api-docs      -> ReDoc HTML
//	GET /openapi.yaml  -> embedded OpenAPI spec
func Register(_ context.Context, mux *http.ServeMux, opts ...Option) {
	if mux == nil {
		panic("mux is nil")
	}

	o := options{scriptURL: DefaultScriptURL}
	for _, opt := range opts {
		opt(&o)
	}
	page := renderIndex(o.scriptURL)

	mux.HandleFunc("GET /api-docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})

	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}

// Minimal HTML that loads ReDoc and points it at /openapi.yaml.
var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Image Catalog API - ReDoc</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="{{.}}"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`))

func renderIndex(scriptURL string) []byte {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, scriptURL); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
