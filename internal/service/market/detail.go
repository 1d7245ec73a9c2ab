package market

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/recommend"
)

// Detail is a listing together with its closest alternatives.
type Detail struct {
	Listing domain.Listing
	Similar []domain.Listing
}

// Detail returns the active listing called name and its recommendations.
// The listing and the recommendation pool are loaded concurrently.
func (s *Service) Detail(ctx context.Context, name string) (*Detail, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	var (
		listing *domain.Listing
		pool    []domain.Listing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.listings.GetByName(gctx, name)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		listing = l
		return nil
	})
	g.Go(func() error {
		p, err := s.listings.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("load recommendation pool: %w", err)
		}
		pool = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	similar := recommend.Recommend(pool, recommend.ReferenceOf(*listing), s.recommendLimit)

	s.log.DebugContext(ctx, "listing detail",
		slog.String("name", name),
		slog.Int("pool", len(pool)),
		slog.Int("similar", len(similar)),
	)

	return &Detail{Listing: *listing, Similar: similar}, nil
}
