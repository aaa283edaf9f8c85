package tip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
)

// DeleteTip deletes a tip. The gap it leaves in its topic is closed when
// compaction is enabled.
func (s *Service) DeleteTip(ctx context.Context, tipID int64) error {
	if tipID <= 0 {
		return domain.NewValidationError("tip_id", "required")
	}

	var tip *domain.Tip
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locks.LockScope(txCtx, ordering.LockTips); err != nil {
			return fmt.Errorf("lock tips: %w", err)
		}

		var err error
		tip, err = s.find(txCtx, tipID)
		if err != nil {
			return fmt.Errorf("get tip: %w", err)
		}

		n, err := s.tips.DeleteOne(txCtx, byID(tipID))
		if err != nil {
			return fmt.Errorf("delete tip: %w", err)
		}
		if n == 0 {
			return domain.NewNotFoundError(domain.KindTip, tipID)
		}

		if s.cfg.CompactOnDelete {
			if err := s.order.Close(txCtx, ordering.TipsScope(s.tips, tip.TopicID), tipID, tip.DisplayOrder); err != nil {
				return fmt.Errorf("compact tips: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "tip deleted",
		slog.Int64("tip_id", tipID),
		slog.Int64("topic_id", tip.TopicID),
	)

	return nil
}
