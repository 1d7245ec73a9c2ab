// Package notify relays new leads to the sales team.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// Webhook posts each lead as JSON to a fixed URL.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a Webhook with the given request timeout.
func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{url: url, client: &http.Client{Timeout: timeout}}
}

type leadPayload struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Message    *string `json:"message,omitempty"`
	DomainName string  `json:"domainName"`
	OfferPrice *int64  `json:"offerPrice,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// NotifyLead delivers l. Any non-2xx response is an error.
func (w *Webhook) NotifyLead(ctx context.Context, l domain.Lead) error {
	body, err := json.Marshal(leadPayload{
		ID:         l.ID.String(),
		Type:       l.Type.String(),
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Message:    l.Message,
		DomainName: l.DomainName,
		OfferPrice: l.OfferPrice,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("notify: encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post lead: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: webhook responded %d", resp.StatusCode)
	}
	return nil
}

// Noop discards notifications. It is used when no webhook is configured.
type Noop struct{}

func (Noop) NotifyLead(context.Context, domain.Lead) error { return nil }
