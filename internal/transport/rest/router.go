package rest

import (
	"net/http"

	"github.com/grouponesailor/group6-tips-server/internal/transport/middleware"
)

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Health *HealthHandler
	Topics *TopicHandler
	Tips   *TipHandler
	Search *SearchHandler
}

// NewRouter registers all routes. searchLimit wraps the search endpoint
// and may be nil.
func NewRouter(h Handlers, searchLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/topics", h.Topics.Upsert)
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("GET /api/topics/{id}", h.Topics.Get)
	mux.HandleFunc("DELETE /api/topics/{id}", h.Topics.Delete)
	mux.HandleFunc("GET /api/topics/{id}/tips", h.Tips.ListByTopic)

	mux.HandleFunc("POST /api/tips", h.Tips.Upsert)
	mux.HandleFunc("GET /api/tips", h.Tips.List)
	mux.HandleFunc("GET /api/tips/{id}", h.Tips.Get)
	mux.HandleFunc("DELETE /api/tips/{id}", h.Tips.Delete)

	mux.Handle("GET /api/search", middleware.Wrap(h.Search.Search, searchLimit))

	return mux
}
