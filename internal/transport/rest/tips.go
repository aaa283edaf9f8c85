package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/tip"
)

// tipService defines the minimal interface needed by TipHandler.
type tipService interface {
	UpsertTip(ctx context.Context, input tip.UpsertTipInput) (*domain.Tip, bool, error)
	ListTips(ctx context.Context) ([]domain.Tip, error)
	ListTipsByTopic(ctx context.Context, topicID int64) ([]domain.Tip, error)
	GetTip(ctx context.Context, tipID int64) (*domain.Tip, error)
	DeleteTip(ctx context.Context, tipID int64) error
}

// TipHandler serves tip REST endpoints.
type TipHandler struct {
	svc tipService
	log *slog.Logger
}

// NewTipHandler creates a TipHandler.
func NewTipHandler(svc tipService, logger *slog.Logger) *TipHandler {
	return &TipHandler{svc: svc, log: logger.With("handler", "tip")}
}

// Upsert handles POST /api/tips.
func (h *TipHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req tipRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	order, err := parseOrderKey(req.DisplayOrder)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, created, err := h.svc.UpsertTip(r.Context(), tip.UpsertTipInput{
		TipID:        req.TipID,
		TopicID:      req.TopicID,
		Title:        req.Title,
		Description:  req.Description,
		Media:        toDomainMedia(req.Media),
		DisplayOrder: order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toTipResponse(result))
}

// List handles GET /api/tips.
func (h *TipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.svc.ListTips(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTipResponses(tips))
}

// ListByTopic handles GET /api/topics/{id}/tips.
func (h *TipHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tips, err := h.svc.ListTipsByTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTipResponses(tips))
}

// Get handles GET /api/tips/{id}.
func (h *TipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTip(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTipResponse(t))
}

// Delete handles DELETE /api/tips/{id}.
func (h *TipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTip(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTipResponses(tips []domain.Tip) []tipResponse {
	resp := make([]tipResponse, 0, len(tips))
	for i := range tips {
		resp = append(resp, toTipResponse(&tips[i]))
	}
	return resp
}
