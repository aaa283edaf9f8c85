package tip

import (
	"context"
	"fmt"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// GetTip returns a single tip.
func (s *Service) GetTip(ctx context.Context, tipID int64) (*domain.Tip, error) {
	if tipID <= 0 {
		return nil, domain.NewValidationError("tip_id", "required")
	}

	tip, err := s.find(ctx, tipID)
	if err != nil {
		return nil, fmt.Errorf("get tip: %w", err)
	}
	return tip, nil
}

// ListTips returns every tip, grouped by topic and in display order.
func (s *Service) ListTips(ctx context.Context) ([]domain.Tip, error) {
	tips, err := s.tips.Find(ctx, store.Filter{},
		store.WithSort(domain.FieldTopicID, false),
		store.WithSort(domain.FieldDisplayOrder, false),
		store.WithSort(domain.FieldTipID, false),
	)
	if err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	return tips, nil
}

// ListTipsByTopic returns the tips of one topic in display order. An
// unknown topic has no tips.
func (s *Service) ListTipsByTopic(ctx context.Context, topicID int64) ([]domain.Tip, error) {
	if topicID <= 0 {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	tips, err := s.tips.Find(ctx, store.Where(store.Eq(domain.FieldTopicID, topicID)),
		store.WithSort(domain.FieldDisplayOrder, false),
		store.WithSort(domain.FieldTipID, false),
	)
	if err != nil {
		return nil, fmt.Errorf("list tips of topic %d: %w", topicID, err)
	}
	return tips, nil
}
