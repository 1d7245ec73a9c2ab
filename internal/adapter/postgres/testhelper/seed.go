package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedListing inserts an active listing named "<prefix>-<suffix><ext>".
// Tests share one database, so names are always made unique.
func SeedListing(t *testing.T, pool *pgxpool.Pool, prefix, ext string, price int64) domain.Listing {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	l := domain.Listing{
		ID:        uuid.New(),
		Name:      prefix + "-" + UniqueSuffix() + ext,
		Price:     price,
		Category:  "test-" + prefix,
		Extension: ext,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO listings (id, name, price, category, extension, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.Name, l.Price, l.Category, l.Extension, l.IsActive, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedListing: %v", err)
	}
	return l
}

// SeedBlogPost inserts a blog post with a unique slug.
func SeedBlogPost(t *testing.T, pool *pgxpool.Pool, published bool, publishedDate time.Time) domain.BlogPost {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.BlogPost{
		ID:            uuid.New(),
		Slug:          "post-" + UniqueSuffix(),
		Title:         "Test post",
		Excerpt:       "Excerpt",
		Content:       "## Heading\nBody",
		Category:      "test",
		ReadTime:      "3 min",
		PublishedDate: publishedDate,
		IsPublished:   published,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO blog_posts (id, slug, title, excerpt, content, category, read_time, published_date, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.Category, p.ReadTime, p.PublishedDate, p.IsPublished, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBlogPost: %v", err)
	}
	return p
}
