package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/domainmarket-backend/internal/adapter/cache"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/notify"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/blogpost"
	leadrepo "github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/listing"
	"github.com/heartmarshall/domainmarket-backend/internal/config"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/metrics"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
	"github.com/heartmarshall/domainmarket-backend/internal/service/lead"
	"github.com/heartmarshall/domainmarket-backend/internal/service/market"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/middleware"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/rest"
)

const poolStatsInterval = 15 * time.Second

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires services and serves HTTP until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var (
		catalogCache *cache.Cache
		cachePinger  interface{ Ping(context.Context) error }
	)
	if cfg.Cache.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Cache)
		if err != nil {
			logger.Warn("cache unavailable, serving from database",
				slog.String("error", err.Error()))
		} else {
			defer rdb.Close()
			catalogCache = cache.New(rdb, cfg.Cache.Prefix, cfg.Cache.TTL, logger)
			cachePinger = catalogCache
		}
	}

	var notifier interface {
		NotifyLead(ctx context.Context, l domain.Lead) error
	} = notify.Noop{}
	if cfg.Leads.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Leads.WebhookURL, cfg.Leads.WebhookTimeout)
	}

	listings := cache.NewListings(listing.New(pool), catalogCache)
	posts := cache.NewPosts(blogpost.New(pool), catalogCache)

	marketSvc := market.NewService(logger, listings, cfg.Catalog.RecommendationLimit)
	blogSvc := blog.NewService(logger, posts)
	leadSvc := lead.NewService(logger, leadrepo.New(pool), notifier)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(logger, cfg, Handlers{
		Domains: rest.NewDomainHandler(marketSvc, logger),
		Blog:    rest.NewBlogHandler(blogSvc, logger),
		Leads:   rest.NewLeadHandler(leadSvc, logger),
		Health:  rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
	}, limiter)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics.CollectPoolStats(gctx, metrics.PoolProvider(pool), poolStatsInterval)
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
