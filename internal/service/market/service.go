// Package market serves the domain catalog: filtered listing pages,
// listing details with similar recommendations, and filter facets.
package market

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/recommend"
)

//go:generate moq -out listing_repo_mock_test.go -rm . listingRepo

type listingRepo interface {
	ListActive(ctx context.Context) ([]domain.Listing, error)
	GetByName(ctx context.Context, name string) (*domain.Listing, error)
	Facets(ctx context.Context) (domain.Facets, error)
}

// Service provides catalog read operations.
type Service struct {
	listings       listingRepo
	recommendLimit int
	log            *slog.Logger
}

// NewService creates a new market service. A recommendLimit of zero or
// less falls back to recommend.DefaultLimit.
func NewService(
	log *slog.Logger,
	listings listingRepo,
	recommendLimit int,
) *Service {
	if recommendLimit <= 0 {
		recommendLimit = recommend.DefaultLimit
	}
	return &Service{
		listings:       listings,
		recommendLimit: recommendLimit,
		log:            log.With("service", "market"),
	}
}
