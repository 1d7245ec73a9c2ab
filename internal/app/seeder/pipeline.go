// Package seeder loads listings and blog posts from a YAML seed file
// into the database.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/adapter/cache"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"domains", "posts"}

type listingWriter interface {
	Upsert(ctx context.Context, l *domain.Listing) error
}

type postWriter interface {
	Upsert(ctx context.Context, p *domain.BlogPost) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Deps are the pipeline's collaborators. Cache may be nil.
type Deps struct {
	Listings listingWriter
	Posts    postWriter
	Tx       txRunner
	Cache    cacheInvalidator
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Upserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline upserts seed records in one transaction.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		deps:    deps,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run seeds the file. If phases is non-empty, only the listed phases run.
// Every record is validated before anything is written; a failing upsert
// rolls back the whole run.
func (p *Pipeline) Run(ctx context.Context, file *File, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	now := p.now()
	listings, err := file.Listings(now)
	if err != nil {
		return fmt.Errorf("invalid domains: %w", err)
	}
	posts, err := file.Posts(now)
	if err != nil {
		return fmt.Errorf("invalid posts: %w", err)
	}

	if p.cfg.DryRun {
		for _, phase := range toRun {
			n := len(listings)
			if phase == "posts" {
				n = len(posts)
			}
			p.results[phase] = PhaseResult{Skipped: n}
			p.log.InfoContext(ctx, "dry run", slog.String("phase", phase), slog.Int("records", n))
		}
		return nil
	}

	results := make(map[string]PhaseResult, len(toRun))
	err = p.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range toRun {
			start := time.Now()
			p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase))

			var (
				n   int
				err error
			)
			switch phase {
			case "domains":
				n, err = upsertAll(ctx, listings, p.deps.Listings.Upsert)
			case "posts":
				n, err = upsertAll(ctx, posts, p.deps.Posts.Upsert)
			}
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}

			results[phase] = PhaseResult{Upserted: n, Duration: time.Since(start)}
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.results = results

	for _, phase := range toRun {
		r := results[phase]
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", phase),
			slog.Int("upserted", r.Upserted),
			slog.Duration("duration", r.Duration),
		)
	}

	if p.deps.Cache != nil {
		if err := p.deps.Cache.Invalidate(ctx, cache.CatalogKeys...); err != nil {
			p.log.WarnContext(ctx, "cache invalidation failed, entries expire by TTL",
				slog.String("error", err.Error()))
		}
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func upsertAll[T any](ctx context.Context, items []T, upsert func(context.Context, *T) error) (int, error) {
	for i := range items {
		if err := upsert(ctx, &items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
	}
	out := make([]string, 0, len(phases))
	for _, ph := range allPhases {
		if slices.Contains(phases, ph) {
			out = append(out, ph)
		}
	}
	return out, nil
}
