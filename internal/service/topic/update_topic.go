package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// UpdateTopic updates an existing topic. A changed display order shifts
// the topics between the old and the new position.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated  *domain.Topic
		oldOrder int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTopics); err != nil {
			return fmt.Errorf("lock topics: %w", err)
		}

		old, err := s.find(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}
		oldOrder = old.DisplayOrder

		key, err := s.order.Move(txCtx, ordering.TopicsScope(s.topics), old.TopicID, old.DisplayOrder, input.DisplayOrder)
		if err != nil {
			return fmt.Errorf("move topic: %w", err)
		}

		set := buildTopicChanges(input)
		set[domain.FieldDisplayOrder] = key
		set[domain.FieldUpdatedAt] = s.now()

		if _, err := s.topics.UpdateOne(txCtx, byID(input.TopicID), store.SetFields(set)); err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		updated, err = s.find(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("reload topic: %w", err)
		}
		updated.TipCount, err = s.countTips(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("count tips: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "topic updated",
		slog.Int64("topic_id", updated.TopicID),
		slog.Int("old_display_order", oldOrder),
		slog.Int("display_order", updated.DisplayOrder),
	)

	return updated, nil
}

// buildTopicChanges returns the stored fields set by input.
func buildTopicChanges(input UpdateTopicInput) store.Doc {
	set := store.Doc{}
	if input.Title != nil {
		set[domain.FieldTitle] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		set[domain.FieldDescription] = trimOrNil(input.Description)
	}
	if input.IsNew != nil {
		set[domain.FieldIsNew] = *input.IsNew
	}
	if input.Icon != nil {
		set[domain.FieldIcon] = strings.TrimSpace(*input.Icon)
	}
	return set
}
