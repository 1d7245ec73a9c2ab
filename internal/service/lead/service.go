// Package lead accepts storefront form submissions: buy requests,
// price offers, sell requests and general contact messages.
package lead

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -rm . leadRepo notifier

type leadRepo interface {
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
}

type notifier interface {
	NotifyLead(ctx context.Context, l domain.Lead) error
}

// Service persists leads and relays them to the sales team.
type Service struct {
	leads    leadRepo
	notifier notifier
	log      *slog.Logger
}

// NewService creates a new lead service.
func NewService(
	log *slog.Logger,
	leads leadRepo,
	notifier notifier,
) *Service {
	return &Service{
		leads:    leads,
		notifier: notifier,
		log:      log.With("service", "lead"),
	}
}
