package tip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// UpdateTip updates an existing tip. A changed display order shifts the
// tips between the old and the new position. A changed topic closes the
// gap in the old topic and places the tip in the new one, appended
// unless a display order is given.
func (s *Service) UpdateTip(ctx context.Context, input UpdateTipInput) (*domain.Tip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Tip
		old     domain.Tip
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTips); err != nil {
			return fmt.Errorf("lock tips: %w", err)
		}

		current, err := s.find(txCtx, input.TipID)
		if err != nil {
			return fmt.Errorf("get tip: %w", err)
		}
		old = *current

		set := buildTipChanges(input)

		if input.TopicID != nil && *input.TopicID != old.TopicID {
			key, err := s.moveAcross(txCtx, old, *input.TopicID, input.DisplayOrder)
			if err != nil {
				return err
			}
			set[domain.FieldTopicID] = *input.TopicID
			set[domain.FieldDisplayOrder] = key
		} else {
			key, err := s.order.Move(txCtx, ordering.TipsScope(s.tips, old.TopicID), old.TipID, old.DisplayOrder, input.DisplayOrder)
			if err != nil {
				return fmt.Errorf("move tip: %w", err)
			}
			set[domain.FieldDisplayOrder] = key
		}
		set[domain.FieldUpdatedAt] = s.now()

		if _, err := s.tips.UpdateOne(txCtx, byID(input.TipID), store.SetFields(set)); err != nil {
			return fmt.Errorf("update tip: %w", err)
		}

		updated, err = s.find(txCtx, input.TipID)
		if err != nil {
			return fmt.Errorf("reload tip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "tip updated",
		slog.Int64("tip_id", updated.TipID),
		slog.Int64("old_topic_id", old.TopicID),
		slog.Int64("topic_id", updated.TopicID),
		slog.Int("old_display_order", old.DisplayOrder),
		slog.Int("display_order", updated.DisplayOrder),
	)

	return updated, nil
}

// moveAcross takes tip out of its topic's ordering and makes room for it
// in topicID's ordering. It returns the tip's key in the new topic.
func (s *Service) moveAcross(ctx context.Context, tip domain.Tip, topicID int64, requested *int) (int, error) {
	if err := s.requireTopic(ctx, topicID); err != nil {
		return 0, fmt.Errorf("check topic: %w", err)
	}
	if err := s.order.Close(ctx, ordering.TipsScope(s.tips, tip.TopicID), tip.TipID, tip.DisplayOrder); err != nil {
		return 0, fmt.Errorf("leave topic %d: %w", tip.TopicID, err)
	}
	key, err := s.order.Place(ctx, ordering.TipsScope(s.tips, topicID), requested)
	if err != nil {
		return 0, fmt.Errorf("enter topic %d: %w", topicID, err)
	}
	return key, nil
}

// buildTipChanges returns the content fields set by input.
func buildTipChanges(input UpdateTipInput) store.Doc {
	set := store.Doc{}
	if input.Title != nil {
		set[domain.FieldTitle] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		set[domain.FieldDescription] = strings.TrimSpace(*input.Description)
	}
	switch {
	case input.Media != nil:
		set[domain.FieldMedia] = normalizeMedia(input.Media)
	case input.ClearMedia:
		set[domain.FieldMedia] = (*domain.Media)(nil)
	}
	return set
}
