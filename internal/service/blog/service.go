// Package blog serves published blog posts.
package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

//go:generate moq -out post_repo_mock_test.go -rm . postRepo

type postRepo interface {
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
}

// Service provides blog read operations.
type Service struct {
	posts postRepo
	log   *slog.Logger
}

// NewService creates a new blog service.
func NewService(log *slog.Logger, posts postRepo) *Service {
	return &Service{
		posts: posts,
		log:   log.With("service", "blog"),
	}
}

// List returns one blog page. Page 1 carries the newest match as Featured.
func (s *Service) List(ctx context.Context, f catalog.BlogFilter) (catalog.BlogPage, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return catalog.BlogPage{}, fmt.Errorf("load posts: %w", err)
	}
	return catalog.QueryPosts(posts, f), nil
}

// Post is a published post with its body split into blocks.
type Post struct {
	domain.BlogPost
	Blocks []domain.ContentBlock
}

// Get returns the published post with the given slug.
func (s *Service) Get(ctx context.Context, slug string) (*Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	p, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &Post{BlogPost: *p, Blocks: domain.ParseContent(p.Content)}, nil
}
