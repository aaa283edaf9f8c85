package search

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// newParentLoader batches topic lookups for the tip hits of one search.
// A missing topic loads as nil.
func newParentLoader(topics topicStore) *dataloader.Loader[int64, *domain.Topic] {
	return dataloader.NewBatchedLoader(
		newParentBatchFn(topics),
		dataloader.WithWait[int64, *domain.Topic](wait),
		dataloader.WithBatchCapacity[int64, *domain.Topic](maxBatch),
	)
}

func newParentBatchFn(topics topicStore) dataloader.BatchFunc[int64, *domain.Topic] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Topic] {
		rows, err := topics.Find(ctx, store.Where(store.In(domain.FieldTopicID, keys)))
		if err != nil {
			results := make([]*dataloader.Result[*domain.Topic], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Topic]{Error: err}
			}
			return results
		}

		byID := make(map[int64]*domain.Topic, len(rows))
		for i := range rows {
			t := rows[i]
			byID[t.TopicID] = &t
		}

		results := make([]*dataloader.Result[*domain.Topic], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Topic]{Data: byID[key]}
		}
		return results
	}
}
