package topic

import (
	"context"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// UpsertTopic creates a topic when input carries no ID or a zero ID and
// updates the identified topic otherwise. An ID that matches no topic is
// NotFound.
// The returned flag reports whether a topic was created.
func (s *Service) UpsertTopic(ctx context.Context, input UpsertTopicInput) (*domain.Topic, bool, error) {
	if input.TopicID != nil && *input.TopicID == 0 {
		input.TopicID = nil
	}
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	if input.TopicID == nil {
		created, err := s.CreateTopic(ctx, input.create())
		return created, err == nil, err
	}

	updated, err := s.UpdateTopic(ctx, input.update())
	return updated, false, err
}
