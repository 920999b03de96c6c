package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	harticle "article-api/internal/handler/http/article"
	"article-api/internal/handler/http/requestid"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/tracing"
	artUC "article-api/internal/usecase/article"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger  *slog.Logger
	Service *artUC.Service

	// Store is pinged by /health and /ready.
	Store  Pinger
	DB     *sql.DB // optional, adds pool stats to /health
	Driver string

	Version      string
	MaxBodyBytes int64
	RateLimiter  *RateLimiter // nil disables rate limiting
}

// NewRouter builds the chi router for the service.
//
// Every request gets a request id, a span, a log line, panic recovery and
// metrics. The article routes are additionally rate limited and body limited.
// Paths that match no route (including non-digit article ids) get a JSON 404.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(tracing.Middleware)
	r.Use(Logging(cfg.Logger))
	r.Use(Recover(cfg.Logger))
	r.Use(MetricsMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Message(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Message(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Method(http.MethodGet, "/health", &HealthHandler{
		Store:   cfg.Store,
		DB:      cfg.DB,
		Driver:  cfg.Driver,
		Version: cfg.Version,
	})
	r.Method(http.MethodGet, "/ready", &ReadyHandler{Store: cfg.Store})
	r.Method(http.MethodGet, "/live", &LiveHandler{})
	r.Method(http.MethodGet, "/metrics", MetricsHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}
		if cfg.MaxBodyBytes > 0 {
			r.Use(LimitRequestBody(cfg.MaxBodyBytes))
		}
		harticle.Register(r, cfg.Service)
	})

	return r
}
