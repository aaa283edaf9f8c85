package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	UpsertTopic(ctx context.Context, input topic.UpsertTopicInput) (*domain.Topic, bool, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	GetTopic(ctx context.Context, topicID int64) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID int64) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

// Upsert handles POST /api/topics.
func (h *TopicHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	order, err := parseOrderKey(req.DisplayOrder)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, created, err := h.svc.UpsertTopic(r.Context(), topic.UpsertTopicInput{
		TopicID:      req.TopicID,
		Title:        req.Title,
		Description:  req.Description,
		DisplayOrder: order,
		IsNew:        req.IsNew,
		Icon:         req.Icon,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toTopicResponse(result))
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]topicResponse, 0, len(topics))
	for i := range topics {
		resp = append(resp, toTopicResponse(&topics[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
