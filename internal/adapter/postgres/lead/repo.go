// Package lead stores storefront form submissions in PostgreSQL.
package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

const table = "leads"

var columns = []string{
	"id", "type", "name", "email", "phone", "message", "domain_name",
	"offer_price", "status", "created_at", "updated_at",
}

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new lead repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type leadRow struct {
	ID         uuid.UUID `db:"id"`
	Type       string    `db:"type"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      *string   `db:"phone"`
	Message    *string   `db:"message"`
	DomainName string    `db:"domain_name"`
	OfferPrice *int64    `db:"offer_price"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r leadRow) toDomain() domain.Lead {
	return domain.Lead{
		ID:         r.ID,
		Type:       domain.LeadType(r.Type),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Message:    r.Message,
		DomainName: r.DomainName,
		OfferPrice: r.OfferPrice,
		Status:     domain.LeadStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Create inserts a lead and returns the persisted row.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			l.ID, string(l.Type), l.Name, l.Email, l.Phone, l.Message, l.DomainName,
			l.OfferPrice, string(l.Status), l.CreatedAt, l.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create lead query: %w", err)
	}

	var row leadRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "lead", l.ID.String())
	}

	out := row.toDomain()
	return &out, nil
}
