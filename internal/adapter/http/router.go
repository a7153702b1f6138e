package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finlight/pocketledger/internal/adapter/http/handler"
	"github.com/finlight/pocketledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SourceHandler      *handler.SourceHandler
	TransactionHandler *handler.TransactionHandler
	ReceivableHandler  *handler.ReceivableHandler
	LedgerHandler      *handler.LedgerHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   middleware.IdempotencyStore
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/sources", func(r chi.Router) {
			r.Get("/", cfg.SourceHandler.List)
			r.Post("/", cfg.SourceHandler.Create)
		})

		r.Post("/transactions", cfg.TransactionHandler.Create)
		r.Get("/history", cfg.TransactionHandler.History)

		r.Route("/receivables", func(r chi.Router) {
			r.Get("/", cfg.ReceivableHandler.List)
			r.Post("/", cfg.ReceivableHandler.Lend)
			r.Post("/settle", cfg.ReceivableHandler.Settle)
		})

		r.Get("/ledger/reconcile", cfg.LedgerHandler.Reconcile)
	})

	return r
}
