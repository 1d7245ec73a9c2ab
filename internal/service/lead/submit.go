package lead

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/metrics"
)

// Submit validates and stores a lead of any type, then notifies the sales team.
// A failed notification is logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Lead, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.leads.Create(ctx, &domain.Lead{
		ID:         uuid.New(),
		Type:       input.Type,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		DomainName: input.DomainName,
		OfferPrice: input.OfferPrice,
		Status:     domain.LeadStatusNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	metrics.ObserveLead(created.Type.String())
	s.log.InfoContext(ctx, "lead submitted",
		slog.String("lead_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("domain", created.DomainName),
	)

	if err := s.notifier.NotifyLead(context.WithoutCancel(ctx), *created); err != nil {
		metrics.LeadNotifyFailures.Inc()
		s.log.WarnContext(ctx, "lead notification failed",
			slog.String("lead_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return created, nil
}

// Offer submits a price offer for a listed domain. OfferPrice is required.
func (s *Service) Offer(ctx context.Context, input SubmitInput) (*domain.Lead, error) {
	input.Type = domain.LeadTypeOffer
	return s.Submit(ctx, input)
}

// Sell submits a request from an owner who wants to list a domain.
func (s *Service) Sell(ctx context.Context, input SubmitInput) (*domain.Lead, error) {
	input.Type = domain.LeadTypeSellOffer
	return s.Submit(ctx, input)
}
