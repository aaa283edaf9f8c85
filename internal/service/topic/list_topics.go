package topic

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// ListTopics returns all topics in display order, each with its tip count.
func (s *Service) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.Find(ctx, store.Filter{},
		store.WithSort(domain.FieldDisplayOrder, false),
		store.WithSort(domain.FieldTopicID, false),
	)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.TipCountConcurrency, 1))
	for i := range topics {
		g.Go(func() error {
			n, err := s.countTips(gctx, topics[i].TopicID)
			if err != nil {
				return fmt.Errorf("count tips of topic %d: %w", topics[i].TopicID, err)
			}
			topics[i].TipCount = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return topics, nil
}
