package ordering

import (
	"context"
	"fmt"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// Keyed exposes a member's identity and current key.
type Keyed[T any] struct {
	ID    func(T) int64
	Order func(T) int
}

// TopicKeys reads topic identity and order.
var TopicKeys = Keyed[domain.Topic]{
	ID:    func(t domain.Topic) int64 { return t.TopicID },
	Order: func(t domain.Topic) int { return t.DisplayOrder },
}

// TipKeys reads tip identity and order.
var TipKeys = Keyed[domain.Tip]{
	ID:    func(t domain.Tip) int64 { return t.TipID },
	Order: func(t domain.Tip) int { return t.DisplayOrder },
}

// Renumber rewrites the keys of a scope to 0..n-1, keeping the current
// relative order (ties broken by identity). It returns how many members
// changed. Used to repair a scope left inconsistent by a failed shift.
func Renumber[T any](ctx context.Context, coll store.Collection[T], s Scope, keys Keyed[T]) (int, error) {
	members, err := coll.Find(ctx, s.Filter,
		store.WithSort(domain.FieldDisplayOrder, false),
		store.WithSort(s.KeyField, false),
	)
	if err != nil {
		return 0, fmt.Errorf("renumber %s: find: %w", s.Name, err)
	}

	changed := 0
	for i, member := range members {
		if keys.Order(member) == i {
			continue
		}
		_, err := coll.UpdateOne(ctx,
			s.Filter.And(store.Eq(s.KeyField, keys.ID(member))),
			store.SetFields(store.Doc{domain.FieldDisplayOrder: i}),
		)
		if err != nil {
			return changed, fmt.Errorf("renumber %s: update %d: %w", s.Name, keys.ID(member), err)
		}
		changed++
	}
	return changed, nil
}
