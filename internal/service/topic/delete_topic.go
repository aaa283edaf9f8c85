package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// DeleteTopic deletes a topic together with all of its tips. The tips
// go as a set; the topic's own gap is closed when compaction is enabled.
func (s *Service) DeleteTopic(ctx context.Context, topicID int64) error {
	if topicID <= 0 {
		return domain.NewValidationError("topic_id", "required")
	}

	var (
		topic       *domain.Topic
		deletedTips int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTopics); err != nil {
			return fmt.Errorf("lock topics: %w", err)
		}
		if err := s.locks.LockScope(txCtx, ordering.LockTips); err != nil {
			return fmt.Errorf("lock tips: %w", err)
		}

		var err error
		topic, err = s.find(txCtx, topicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		deletedTips, err = s.tips.DeleteMany(txCtx, store.Where(store.Eq(domain.FieldTopicID, topicID)))
		if err != nil {
			return fmt.Errorf("delete tips: %w", err)
		}

		n, err := s.topics.DeleteOne(txCtx, byID(topicID))
		if err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		if n == 0 {
			return domain.NewNotFoundError(domain.KindTopic, topicID)
		}

		if s.cfg.CompactOnDelete {
			if err := s.order.Close(txCtx, ordering.TopicsScope(s.topics), topicID, topic.DisplayOrder); err != nil {
				return fmt.Errorf("compact topics: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "topic deleted",
		slog.Int64("topic_id", topicID),
		slog.String("title", topic.Title),
		slog.Int64("tips_deleted", deletedTips),
	)

	return nil
}
