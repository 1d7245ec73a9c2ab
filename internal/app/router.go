package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/domainmarket-backend/internal/config"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/middleware"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/rest"
)

// Handlers groups the REST handlers served by the storefront.
type Handlers struct {
	Domains *rest.DomainHandler
	Blog    *rest.BlogHandler
	Leads   *rest.LeadHandler
	Health  *rest.HealthHandler
}

// NewRouter registers every route and wraps the mux with the middleware chain.
// Lead forms share one per-IP bucket from limiter.
func NewRouter(logger *slog.Logger, cfg *config.Config, h Handlers, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /domains", h.Domains.List)
	mux.HandleFunc("GET /domains/facets", h.Domains.Facets)
	mux.HandleFunc("GET /domains/{name}", h.Domains.Get)

	mux.HandleFunc("GET /blog", h.Blog.List)
	mux.HandleFunc("GET /blog/{slug}", h.Blog.Get)

	limit := limiter.Limit(cfg.Leads.RateLimitPerMinute)
	mux.Handle("POST /contact", limit(http.HandlerFunc(h.Leads.Contact)))
	mux.Handle("POST /offers", limit(http.HandlerFunc(h.Leads.Offer)))
	mux.Handle("POST /sell", limit(http.HandlerFunc(h.Leads.Sell)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(),
	)(mux)
}
