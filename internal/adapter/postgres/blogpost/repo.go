// Package blogpost implements the blog post repository using PostgreSQL.
package blogpost

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

const table = "blog_posts"

var columns = []string{
	"id", "slug", "title", "excerpt", "content", "category", "read_time",
	"published_date", "is_published", "created_at", "updated_at",
}

// Repo provides blog post persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new blog post repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type postRow struct {
	ID            uuid.UUID `db:"id"`
	Slug          string    `db:"slug"`
	Title         string    `db:"title"`
	Excerpt       string    `db:"excerpt"`
	Content       string    `db:"content"`
	Category      string    `db:"category"`
	ReadTime      string    `db:"read_time"`
	PublishedDate time.Time `db:"published_date"`
	IsPublished   bool      `db:"is_published"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r postRow) toDomain() domain.BlogPost {
	return domain.BlogPost{
		ID:            r.ID,
		Slug:          r.Slug,
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		Category:      r.Category,
		ReadTime:      r.ReadTime,
		PublishedDate: r.PublishedDate,
		IsPublished:   r.IsPublished,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ListPublished returns published posts, newest first.
func (r *Repo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"is_published": true}).
		OrderBy("published_date DESC", "slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}

	posts := make([]domain.BlogPost, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

// GetBySlug returns a published post. Drafts are reported as domain.ErrNotFound.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query: %w", err)
	}

	var row postRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "blog_post", slug)
	}

	p := row.toDomain()
	return &p, nil
}

// Upsert inserts a post or updates the existing row with the same slug.
func (r *Repo) Upsert(ctx context.Context, p *domain.BlogPost) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.Category, p.ReadTime,
			p.PublishedDate, p.IsPublished, p.CreatedAt, p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			category = EXCLUDED.category,
			read_time = EXCLUDED.read_time,
			published_date = EXCLUDED.published_date,
			is_published = EXCLUDED.is_published,
			updated_at = EXCLUDED.updated_at
		RETURNING id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert post query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
		return postgres.MapError(err, "blog_post", p.Slug)
	}
	return nil
}
