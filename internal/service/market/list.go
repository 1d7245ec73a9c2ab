package market

import (
	"context"
	"fmt"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// List returns one catalog page of active listings matching f.
func (s *Service) List(ctx context.Context, f catalog.DomainFilter) (catalog.Page[domain.Listing], error) {
	pool, err := s.listings.ListActive(ctx)
	if err != nil {
		return catalog.Page[domain.Listing]{}, fmt.Errorf("load listings: %w", err)
	}
	return catalog.QueryListings(pool, f), nil
}

// Facets returns the category and extension values present in the catalog.
func (s *Service) Facets(ctx context.Context) (domain.Facets, error) {
	facets, err := s.listings.Facets(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("load facets: %w", err)
	}
	return facets, nil
}
