package topic

import (
	"context"
	"fmt"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// GetTopic returns a single topic with its tip count.
func (s *Service) GetTopic(ctx context.Context, topicID int64) (*domain.Topic, error) {
	if topicID <= 0 {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.find(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	topic.TipCount, err = s.countTips(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("count tips: %w", err)
	}

	return topic, nil
}
