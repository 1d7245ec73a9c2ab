// Package listing implements the listing repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

const table = "listings"

var columns = []string{
	"id", "name", "price", "category", "extension", "description",
	"registered_year", "traffic", "registration_date", "first_registration_date",
	"listed_date", "is_active", "created_at", "updated_at",
}

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new listing repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type listingRow struct {
	ID                    uuid.UUID  `db:"id"`
	Name                  string     `db:"name"`
	Price                 int64      `db:"price"`
	Category              string     `db:"category"`
	Extension             string     `db:"extension"`
	Description           *string    `db:"description"`
	RegisteredYear        *int       `db:"registered_year"`
	Traffic               *int       `db:"traffic"`
	RegistrationDate      *time.Time `db:"registration_date"`
	FirstRegistrationDate *time.Time `db:"first_registration_date"`
	ListedDate            *time.Time `db:"listed_date"`
	IsActive              bool       `db:"is_active"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

func (r listingRow) toDomain() domain.Listing {
	return domain.Listing{
		ID:                    r.ID,
		Name:                  r.Name,
		Price:                 r.Price,
		Category:              r.Category,
		Extension:             r.Extension,
		Description:           r.Description,
		RegisteredYear:        r.RegisteredYear,
		Traffic:               r.Traffic,
		RegistrationDate:      r.RegistrationDate,
		FirstRegistrationDate: r.FirstRegistrationDate,
		ListedDate:            r.ListedDate,
		IsActive:              r.IsActive,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActive returns every active listing ordered by price DESC, name ASC.
// This order is the pool order the catalog and recommender build on.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Listing, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"is_active": true}).
		OrderBy("price DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list listings query: %w", err)
	}

	var rows []listingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}

	items := make([]domain.Listing, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// GetByName returns an active listing by its exact name.
// Returns domain.ErrNotFound for unknown or inactive names.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Listing, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get listing query: %w", err)
	}

	var row listingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "listing", name)
	}

	l := row.toDomain()
	return &l, nil
}

type facetRow struct {
	Value string `db:"value"`
	Count int    `db:"count"`
}

// Facets counts active listings per category and per extension.
// Empty categories are skipped.
func (r *Repo) Facets(ctx context.Context) (domain.Facets, error) {
	categories, err := r.facet(ctx, "category")
	if err != nil {
		return domain.Facets{}, err
	}
	extensions, err := r.facet(ctx, "extension")
	if err != nil {
		return domain.Facets{}, err
	}
	return domain.Facets{Categories: categories, Extensions: extensions}, nil
}

func (r *Repo) facet(ctx context.Context, column string) ([]domain.FacetCount, error) {
	query, args, err := postgres.Builder().
		Select(column+" AS value", "COUNT(*) AS count").
		From(table).
		Where(sq.And{sq.Eq{"is_active": true}, sq.NotEq{column: ""}}).
		GroupBy(column).
		OrderBy("count DESC", "value ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s facet query: %w", column, err)
	}

	var rows []facetRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s facet: %w", column, err)
	}

	out := make([]domain.FacetCount, len(rows))
	for i, row := range rows {
		out[i] = domain.FacetCount{Value: row.Value, Count: row.Count}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

var upsertSet = []string{
	"price", "category", "extension", "description", "registered_year", "traffic",
	"registration_date", "first_registration_date", "listed_date", "is_active",
}

// Upsert inserts a listing or updates the existing row with the same name.
// l.ID is replaced with the persisted ID.
func (r *Repo) Upsert(ctx context.Context, l *domain.Listing) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			l.ID, l.Name, l.Price, l.Category, l.Extension, l.Description,
			l.RegisteredYear, l.Traffic, l.RegistrationDate, l.FirstRegistrationDate,
			l.ListedDate, l.IsActive, l.CreatedAt, l.UpdatedAt,
		).
		Suffix(onConflictUpdate("name", upsertSet) + " RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert listing query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&l.ID); err != nil {
		return postgres.MapError(err, "listing", l.Name)
	}
	return nil
}

func onConflictUpdate(key string, cols []string) string {
	sets := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	sets = append(sets, "updated_at = EXCLUDED.updated_at")
	return "ON CONFLICT (" + key + ") DO UPDATE SET " + strings.Join(sets, ", ")
}
