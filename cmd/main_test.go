package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okian/imagecatalog/internal/adapters/repository"
	service "github.com/okian/imagecatalog/internal/app"
	"github.com/okian/imagecatalog/internal/config"
	"github.com/okian/imagecatalog/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func newTestService(ctx context.Context) *service.Service {
	store, _, err := repository.LoadFile(ctx, "")
	if err != nil {
		panic(err)
	}
	return service.New(service.WithStore(store))
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the application handler built from defaults", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		svc := newTestService(ctx)

		convey.Convey("When docs are enabled", func() {
			h := newHandler(ctx, cfg, svc, logger.NewNop())

			convey.Convey("Then the API routes should be served", func() {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldEqual, `{"message":"Request successful","status":200,"data":"Hello World!"}`)
				convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
			})

			convey.Convey("And the docs should be reachable", func() {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				w = httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})

		convey.Convey("When docs load ReDoc from a local path", func() {
			cfg.DocsScriptURL = "/assets/redoc.standalone.js"
			h := newHandler(ctx, cfg, svc, logger.NewNop())

			convey.Convey("Then the docs page should reference it", func() {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `src="/assets/redoc.standalone.js"`)
			})
		})

		convey.Convey("When docs are disabled", func() {
			cfg.DocsEnabled = false
			h := newHandler(ctx, cfg, svc, logger.NewNop())

			convey.Convey("Then the docs path should fall through to the not-found envelope", func() {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
				convey.So(w.Body.String(), convey.ShouldEqual, `{"message":"Request failed","status":404,"error":"Cannot GET /api-docs"}`)
			})
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given the run entrypoint", t, func() {
		clearEnv()
		defer clearEnv()

		convey.Convey("When configuration is invalid", func() {
			_ = os.Setenv("IMGCAT_ADDR", "")

			err := run(context.Background(), logger.NewNop())

			convey.Convey("Then it should fail with a config error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the catalog file is missing", func() {
			_ = os.Setenv("IMGCAT_CATALOG_PATH", "/non/existent/catalog.json")

			err := run(context.Background(), logger.NewNop())

			convey.Convey("Then it should fail before listening", func() {
				convey.So(errors.Is(err, repository.ErrOpenCatalog), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the context is cancelled", func() {
			_ = os.Setenv("IMGCAT_ADDR", "127.0.0.1:0")
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			done := make(chan error, 1)
			go func() { done <- run(ctx, logger.NewNop()) }()

			convey.Convey("Then it should shut down cleanly", func() {
				select {
				case err := <-done:
					convey.So(err, convey.ShouldBeNil)
				case <-time.After(5 * time.Second):
					convey.So("run did not return", convey.ShouldBeEmpty)
				}
			})
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When the context expires", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it should return without panicking", func() {
				convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When updating once", func() {
			convey.So(func() { updateSystemMetrics(context.Background()) }, convey.ShouldNotPanic)
		})
	})
}

func clearEnv() {
	for _, k := range []string{
		"IMGCAT_CONFIG",
		"IMGCAT_ADDR",
		"IMGCAT_LOG_LEVEL",
		"IMGCAT_CATALOG_PATH",
		"IMGCAT_DOCS_ENABLED",
		"IMGCAT_DOCS_SCRIPT_URL",
		"IMGCAT_SHUTDOWN_TIMEOUT_MS",
	} {
		_ = os.Unsetenv(k)
	}
}
