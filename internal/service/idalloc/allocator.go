// Package idalloc hands out integer entity IDs as max(existing)+1.
//
// Next is only collision-free while callers serialize allocation and the
// following insert, e.g. under the scope lock the entity services take.
package idalloc

import (
	"context"
	"fmt"

	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// finder is the read side of a collection.
type finder[T any] interface {
	Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]T, error)
}

// Allocator allocates IDs for one entity type.
type Allocator[T any] struct {
	coll  finder[T]
	field string
	id    func(T) int64
	seed  int64
}

// New creates an Allocator reading the identity field of coll. seed is
// returned when the collection is empty.
func New[T any](coll finder[T], field string, id func(T) int64, seed int64) *Allocator[T] {
	return &Allocator[T]{coll: coll, field: field, id: id, seed: seed}
}

// Next returns the next free ID.
func (a *Allocator[T]) Next(ctx context.Context) (int64, error) {
	top, err := a.coll.Find(ctx, store.Filter{},
		store.WithSort(a.field, true),
		store.WithLimit(1),
	)
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", a.field, err)
	}
	if len(top) == 0 {
		return a.seed, nil
	}
	return a.id(top[0]) + 1, nil
}
