package tip

import (
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxURLLen         = 2048
)

// UpsertTipInput is the body of a create-or-update request. A nil or zero
// TipID creates a tip; otherwise the tip must exist.
type UpsertTipInput struct {
	TipID        *int64
	TopicID      int64
	Title        string
	Description  string
	Media        *domain.Media
	DisplayOrder *int
}

// Validate checks all fields and collects all errors.
func (i UpsertTipInput) Validate() error {
	var errs []domain.FieldError
	if i.TipID != nil && *i.TipID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tip_id", Message: "must be positive"})
	}
	errs = append(errs, validateTopicID(i.TopicID)...)
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateMedia(i.Media)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
}

func (i UpsertTipInput) create() CreateTipInput {
	return CreateTipInput{
		TopicID:      i.TopicID,
		Title:        i.Title,
		Description:  i.Description,
		Media:        i.Media,
		DisplayOrder: i.DisplayOrder,
	}
}

// update replaces the tip's content, including clearing its media.
func (i UpsertTipInput) update() UpdateTipInput {
	return UpdateTipInput{
		TipID:        *i.TipID,
		TopicID:      &i.TopicID,
		Title:        &i.Title,
		Description:  &i.Description,
		Media:        i.Media,
		ClearMedia:   i.Media == nil,
		DisplayOrder: i.DisplayOrder,
	}
}

// CreateTipInput holds the parameters for creating a tip.
type CreateTipInput struct {
	TopicID     int64
	Title       string
	Description string
	Media       *domain.Media
	// DisplayOrder nil appends the tip at the end of its topic.
	DisplayOrder *int
}

// Validate checks all fields and collects all errors.
func (i CreateTipInput) Validate() error {
	errs := validateTopicID(i.TopicID)
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateMedia(i.Media)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
}

// UpdateTipInput holds the parameters for updating a tip. Nil fields are
// left unchanged. A changed TopicID moves the tip to the other topic.
type UpdateTipInput struct {
	TipID        int64
	TopicID      *int64
	Title        *string
	Description  *string
	Media        *domain.Media
	ClearMedia   bool
	DisplayOrder *int
}

// Validate checks all fields and collects all errors.
func (i UpdateTipInput) Validate() error {
	var errs []domain.FieldError
	if i.TipID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tip_id", Message: "required"})
	}
	if i.TopicID != nil {
		errs = append(errs, validateTopicID(*i.TopicID)...)
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if i.Media != nil && i.ClearMedia {
		errs = append(errs, domain.FieldError{Field: "media", Message: "cannot set and clear at once"})
	}
	errs = append(errs, validateMedia(i.Media)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
}

func validateTopicID(topicID int64) []domain.FieldError {
	if topicID <= 0 {
		return []domain.FieldError{{Field: "topic_id", Message: "required"}}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateDescription(description string) []domain.FieldError {
	if len(strings.TrimSpace(description)) > maxDescriptionLen {
		return []domain.FieldError{{Field: "description", Message: "max 5000 characters"}}
	}
	return nil
}

func validateMedia(m *domain.Media) []domain.FieldError {
	if m == nil {
		return nil
	}
	var errs []domain.FieldError
	if !domain.IsValidMediaType(m.Type) {
		errs = append(errs, domain.FieldError{Field: "media.type", Message: "must be image or video"})
	}
	url := strings.TrimSpace(m.URL)
	if url == "" {
		errs = append(errs, domain.FieldError{Field: "media.url", Message: "required"})
	}
	if len(url) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "media.url", Message: "max 2048 characters"})
	}
	if strings.TrimSpace(m.AltText) == "" {
		errs = append(errs, domain.FieldError{Field: "media.alt_text", Message: "required"})
	}
	return errs
}

func normalizeMedia(m *domain.Media) *domain.Media {
	if m == nil {
		return nil
	}
	return &domain.Media{
		Type:    m.Type,
		URL:     strings.TrimSpace(m.URL),
		AltText: strings.TrimSpace(m.AltText),
	}
}
