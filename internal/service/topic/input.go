package topic

import (
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// UpsertTopicInput is the body of a create-or-update request. A nil or zero
// TopicID creates a topic; otherwise the topic must exist.
type UpsertTopicInput struct {
	TopicID      *int64
	Title        string
	Description  *string
	DisplayOrder *int
	IsNew        *bool
	Icon         *string
}

// Validate checks all fields and collects all errors.
func (i UpsertTopicInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID != nil && *i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must be positive"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateDescription(i.Description)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
}

func (i UpsertTopicInput) create() CreateTopicInput {
	return CreateTopicInput{
		Title:        i.Title,
		Description:  i.Description,
		DisplayOrder: i.DisplayOrder,
		IsNew:        i.IsNew,
		Icon:         i.Icon,
	}
}

func (i UpsertTopicInput) update() UpdateTopicInput {
	title := i.Title
	return UpdateTopicInput{
		TopicID:      *i.TopicID,
		Title:        &title,
		Description:  i.Description,
		DisplayOrder: i.DisplayOrder,
		IsNew:        i.IsNew,
		Icon:         i.Icon,
	}
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title       string
	Description *string
	// DisplayOrder nil appends the topic at the end.
	DisplayOrder *int
	IsNew        *bool // nil = true
	Icon         *string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	errs := validateTitle(i.Title)
	errs = append(errs, validateDescription(i.Description)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
}

// UpdateTopicInput holds the parameters for updating a topic. Nil fields
// are left unchanged.
type UpdateTopicInput struct {
	TopicID      int64
	Title        *string
	Description  *string // ptr("") = clear
	DisplayOrder *int
	IsNew        *bool
	Icon         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	errs = append(errs, validateDescription(i.Description)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return ordering.CheckKey(i.DisplayOrder)
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

func validateDescription(description *string) []domain.FieldError {
	if description != nil && len(strings.TrimSpace(*description)) > maxDescriptionLen {
		return []domain.FieldError{{Field: "description", Message: "max 2000 characters"}}
	}
	return nil
}
