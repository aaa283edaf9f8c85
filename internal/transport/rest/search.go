package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*domain.SearchPage, error)
}

// SearchHandler serves the search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=&limit=&offset=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.Search(r.Context(), search.SearchInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchResponse(page))
}
