package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/service/lead"
)

type leadService interface {
	Submit(ctx context.Context, input lead.SubmitInput) (*domain.Lead, error)
	Offer(ctx context.Context, input lead.SubmitInput) (*domain.Lead, error)
	Sell(ctx context.Context, input lead.SubmitInput) (*domain.Lead, error)
}

// LeadHandler serves the contact, offer and sell forms.
type LeadHandler struct {
	svc leadService
	log *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: logger.With("handler", "leads")}
}

// Contact handles POST /contact. The type field selects the form.
func (h *LeadHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.svc.Submit)
}

// Offer handles POST /offers.
func (h *LeadHandler) Offer(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.svc.Offer)
}

// Sell handles POST /sell.
func (h *LeadHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.svc.Sell)
}

func (h *LeadHandler) submit(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, lead.SubmitInput) (*domain.Lead, error),
) {
	var input lead.SubmitInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := fn(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeadResponse(l))
}
