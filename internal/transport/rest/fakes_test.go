package rest

import (
	"context"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
	"github.com/heartmarshall/domainmarket-backend/internal/service/lead"
	"github.com/heartmarshall/domainmarket-backend/internal/service/market"
)

type pingerMock struct {
	err error
}

func (m *pingerMock) Ping(_ context.Context) error {
	return m.err
}

type marketServiceFake struct {
	listFn   func(ctx context.Context, f catalog.DomainFilter) (catalog.Page[domain.Listing], error)
	facetsFn func(ctx context.Context) (domain.Facets, error)
	detailFn func(ctx context.Context, name string) (*market.Detail, error)
}

func (f *marketServiceFake) List(ctx context.Context, filter catalog.DomainFilter) (catalog.Page[domain.Listing], error) {
	return f.listFn(ctx, filter)
}

func (f *marketServiceFake) Facets(ctx context.Context) (domain.Facets, error) {
	return f.facetsFn(ctx)
}

func (f *marketServiceFake) Detail(ctx context.Context, name string) (*market.Detail, error) {
	return f.detailFn(ctx, name)
}

type blogServiceFake struct {
	listFn func(ctx context.Context, f catalog.BlogFilter) (catalog.BlogPage, error)
	getFn  func(ctx context.Context, slug string) (*blog.Post, error)
}

func (f *blogServiceFake) List(ctx context.Context, filter catalog.BlogFilter) (catalog.BlogPage, error) {
	return f.listFn(ctx, filter)
}

func (f *blogServiceFake) Get(ctx context.Context, slug string) (*blog.Post, error) {
	return f.getFn(ctx, slug)
}

type leadServiceFake struct {
	submitFn func(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error)
	offerFn  func(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error)
	sellFn   func(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error)
}

func (f *leadServiceFake) Submit(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error) {
	return f.submitFn(ctx, in)
}

func (f *leadServiceFake) Offer(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error) {
	return f.offerFn(ctx, in)
}

func (f *leadServiceFake) Sell(ctx context.Context, in lead.SubmitInput) (*domain.Lead, error) {
	return f.sellFn(ctx, in)
}
