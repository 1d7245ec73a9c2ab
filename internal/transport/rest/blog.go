package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
)

type blogService interface {
	List(ctx context.Context, f catalog.BlogFilter) (catalog.BlogPage, error)
	Get(ctx context.Context, slug string) (*blog.Post, error)
}

// BlogHandler serves the blog.
type BlogHandler struct {
	svc blogService
	log *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc blogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: logger.With("handler", "blog")}
}

// List handles GET /blog.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), catalog.ParseBlogFilter(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlogPageResponse(page))
}

// Get handles GET /blog/{slug}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.Get(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}
