package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"residents/internal/platform/metrics"
	"residents/internal/platform/middleware"
	"residents/pkg/platform/httputil"
	"residents/pkg/platform/middleware/metadata"
	"residents/pkg/platform/middleware/requesttime"
)

// RouteRegistrar is implemented by every component handler.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// Config carries the shared dependencies of the router.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	// Tracer opens a server span per request; nil disables request spans.
	Tracer         trace.Tracer
	RequestTimeout time.Duration
}

// NewRouter wires the global middleware chain, every component's routes, the
// optional /metrics endpoint and JSON fallbacks for unmatched requests.
func NewRouter(cfg Config, handlers ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(cfg.Tracer))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		// Answers 504 when a handler returns after the deadline has passed.
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteErrorMessage(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteErrorMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	for _, h := range handlers {
		h.Register(r)
	}
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}
	return r
}
