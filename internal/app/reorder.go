package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// ReorderResult counts the members whose display_order was rewritten.
type ReorderResult struct {
	Topics int
	Tips   int
	Scopes int
}

// Reorder renumbers every ordering scope to 0..n-1 in one transaction,
// holding both writer locks so no API write interleaves.
func Reorder(ctx context.Context, b *Backend, log *slog.Logger) (ReorderResult, error) {
	var res ReorderResult

	err := b.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := b.Locks.LockScope(txCtx, ordering.LockTopics); err != nil {
			return err
		}
		if err := b.Locks.LockScope(txCtx, ordering.LockTips); err != nil {
			return err
		}

		n, err := ordering.Renumber(txCtx, b.Topics, ordering.TopicsScope(b.Topics), ordering.TopicKeys)
		if err != nil {
			return err
		}
		res.Topics = n
		res.Scopes++

		topics, err := b.Topics.Find(txCtx, store.Filter{})
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		for _, t := range topics {
			n, err := ordering.Renumber(txCtx, b.Tips, ordering.TipsScope(b.Tips, t.TopicID), ordering.TipKeys)
			if err != nil {
				return err
			}
			res.Tips += n
			res.Scopes++
		}
		return nil
	})
	if err != nil {
		return ReorderResult{}, fmt.Errorf("reorder: %w", err)
	}

	log.InfoContext(ctx, "reorder completed",
		slog.Int("scopes", res.Scopes),
		slog.Int("topics_changed", res.Topics),
		slog.Int("tips_changed", res.Tips),
	)
	return res, nil
}
