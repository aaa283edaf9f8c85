package rest

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

type topicRequest struct {
	TopicID      *int64          `json:"topic_id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	DisplayOrder json.RawMessage `json:"display_order"`
	IsNew        *bool           `json:"is_new"`
	Icon         *string         `json:"icon"`
}

type topicResponse struct {
	TopicID      int64     `json:"topic_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsNew        bool      `json:"is_new"`
	Icon         string    `json:"icon"`
	TipCount     int       `json:"tip_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		TopicID:      t.TopicID,
		Title:        t.Title,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
		IsNew:        t.IsNew,
		Icon:         t.Icon,
		TipCount:     t.TipCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type mediaDTO struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

type tipRequest struct {
	TipID        *int64          `json:"tip_id"`
	TopicID      int64           `json:"topic_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Media        *mediaDTO       `json:"media"`
	DisplayOrder json.RawMessage `json:"display_order"`
}

type tipResponse struct {
	TipID        int64     `json:"tip_id"`
	TopicID      int64     `json:"topic_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Media        *mediaDTO `json:"media"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toTipResponse(t *domain.Tip) tipResponse {
	resp := tipResponse{
		TipID:        t.TipID,
		TopicID:      t.TopicID,
		Title:        t.Title,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Media != nil {
		resp.Media = &mediaDTO{Type: t.Media.Type, URL: t.Media.URL, AltText: t.Media.AltText}
	}
	return resp
}

func toDomainMedia(m *mediaDTO) *domain.Media {
	if m == nil {
		return nil
	}
	return &domain.Media{Type: m.Type, URL: m.URL, AltText: m.AltText}
}

type searchResultResponse struct {
	Type           string  `json:"type"`
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	TopicID        *int64  `json:"topic_id"`
	TopicTitle     *string `json:"topic_title"`
	RelevanceScore float64 `json:"relevance_score"`
}

type searchResponse struct {
	Results    []searchResultResponse `json:"results"`
	TotalCount int                    `json:"total_count"`
	Query      string                 `json:"query"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}

func toSearchResponse(p *domain.SearchPage) searchResponse {
	resp := searchResponse{
		Results:    make([]searchResultResponse, 0, len(p.Results)),
		TotalCount: p.TotalCount,
		Query:      p.Query,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
	for _, r := range p.Results {
		resp.Results = append(resp.Results, searchResultResponse{
			Type:           r.Type,
			ID:             r.ID,
			Title:          r.Title,
			Description:    r.Description,
			TopicID:        r.TopicID,
			TopicTitle:     r.TopicTitle,
			RelevanceScore: r.RelevanceScore,
		})
	}
	return resp
}
