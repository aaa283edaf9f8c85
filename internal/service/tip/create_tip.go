package tip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
)

// CreateTip creates a tip in an existing topic. Nothing is written when
// the topic does not exist.
func (s *Service) CreateTip(ctx context.Context, input CreateTipInput) (*domain.Tip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	tip := domain.Tip{
		TopicID:     input.TopicID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Media:       normalizeMedia(input.Media),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTips); err != nil {
			return fmt.Errorf("lock tips: %w", err)
		}

		if err := s.requireTopic(txCtx, input.TopicID); err != nil {
			return fmt.Errorf("check topic: %w", err)
		}

		id, err := s.ids.Next(txCtx)
		if err != nil {
			return fmt.Errorf("allocate tip id: %w", err)
		}

		key, err := s.order.Place(txCtx, ordering.TipsScope(s.tips, input.TopicID), input.DisplayOrder)
		if err != nil {
			return fmt.Errorf("place tip: %w", err)
		}

		tip.TipID = id
		tip.DisplayOrder = key
		if err := s.tips.Insert(txCtx, tip); err != nil {
			return fmt.Errorf("insert tip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "tip created",
		slog.Int64("tip_id", tip.TipID),
		slog.Int64("topic_id", tip.TopicID),
		slog.Int("display_order", tip.DisplayOrder),
	)

	return &tip, nil
}
