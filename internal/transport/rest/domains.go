package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/service/market"
)

type marketService interface {
	List(ctx context.Context, f catalog.DomainFilter) (catalog.Page[domain.Listing], error)
	Facets(ctx context.Context) (domain.Facets, error)
	Detail(ctx context.Context, name string) (*market.Detail, error)
}

// DomainHandler serves the domain catalog.
type DomainHandler struct {
	svc marketService
	log *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(svc marketService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{svc: svc, log: logger.With("handler", "domains")}
}

// List handles GET /domains.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), catalog.ParseDomainFilter(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toListingResponse))
}

// Get handles GET /domains/{name}.
func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Detail(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	similar := make([]listingResponse, len(d.Similar))
	for i, l := range d.Similar {
		similar[i] = toListingResponse(l)
	}
	writeJSON(w, http.StatusOK, listingDetailResponse{
		listingResponse: toListingResponse(d.Listing),
		Similar:         similar,
	})
}

// Facets handles GET /domains/facets.
func (h *DomainHandler) Facets(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Facets(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFacetsResponse(f))
}
