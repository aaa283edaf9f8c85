package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
)

// CreateTopic creates a topic. Without a display order the topic is
// appended; otherwise the topics at or after that position move down.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	topic := domain.Topic{
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		IsNew:       true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsNew != nil {
		topic.IsNew = *input.IsNew
	}
	if icon := trimOrNil(input.Icon); icon != nil {
		topic.Icon = *icon
	} else {
		topic.Icon = s.icons.DefaultIcon()
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTopics); err != nil {
			return fmt.Errorf("lock topics: %w", err)
		}

		id, err := s.ids.Next(txCtx)
		if err != nil {
			return fmt.Errorf("allocate topic id: %w", err)
		}

		key, err := s.order.Place(txCtx, ordering.TopicsScope(s.topics), input.DisplayOrder)
		if err != nil {
			return fmt.Errorf("place topic: %w", err)
		}

		topic.TopicID = id
		topic.DisplayOrder = key
		if err := s.topics.Insert(txCtx, topic); err != nil {
			return fmt.Errorf("insert topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "topic created",
		slog.Int64("topic_id", topic.TopicID),
		slog.Int("display_order", topic.DisplayOrder),
		slog.String("title", topic.Title),
	)

	return &topic, nil
}
