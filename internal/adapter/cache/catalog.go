package cache

import (
	"context"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// Keys of the cached catalog pools.
const (
	KeyActiveListings = "listings:active"
	KeyFacets         = "listings:facets"
	KeyPublishedPosts = "posts:published"
)

// CatalogKeys lists every key written by the catalog decorators.
var CatalogKeys = []string{KeyActiveListings, KeyFacets, KeyPublishedPosts}

type listingSource interface {
	ListActive(ctx context.Context) ([]domain.Listing, error)
	GetByName(ctx context.Context, name string) (*domain.Listing, error)
	Facets(ctx context.Context) (domain.Facets, error)
}

// Listings caches the active listing pool and its facets.
// Single lookups go straight to the source.
type Listings struct {
	src   listingSource
	cache *Cache
}

// NewListings wraps src with c. A nil c passes every call through.
func NewListings(src listingSource, c *Cache) *Listings {
	return &Listings{src: src, cache: c}
}

func (l *Listings) ListActive(ctx context.Context) ([]domain.Listing, error) {
	return Remember(ctx, l.cache, KeyActiveListings, l.src.ListActive)
}

func (l *Listings) GetByName(ctx context.Context, name string) (*domain.Listing, error) {
	return l.src.GetByName(ctx, name)
}

func (l *Listings) Facets(ctx context.Context) (domain.Facets, error) {
	return Remember(ctx, l.cache, KeyFacets, l.src.Facets)
}

type postSource interface {
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
}

// Posts caches the published blog pool.
type Posts struct {
	src   postSource
	cache *Cache
}

// NewPosts wraps src with c. A nil c passes every call through.
func NewPosts(src postSource, c *Cache) *Posts {
	return &Posts{src: src, cache: c}
}

func (p *Posts) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return Remember(ctx, p.cache, KeyPublishedPosts, p.src.ListPublished)
}

func (p *Posts) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return p.src.GetBySlug(ctx, slug)
}
