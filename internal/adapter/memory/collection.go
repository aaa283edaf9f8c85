// Package memory implements the collection store in process memory.
// It backs local development (database.driver: memory) and the service
// and HTTP tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// Collection is a store.Collection over documents held in memory.
// Documents keep insertion order, which is the order Find returns when no
// sort is requested.
type Collection[T any] struct {
	schema store.Schema[T]

	mu   sync.RWMutex
	docs []store.Doc
}

// NewCollection creates an empty collection.
func NewCollection[T any](schema store.Schema[T]) *Collection[T] {
	return &Collection[T]{schema: schema}
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

func (c *Collection[T]) Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := store.BuildFindOptions(opts...)

	c.mu.RLock()
	matched := make([]store.Doc, 0)
	for _, d := range c.docs {
		if f.Match(d) {
			matched = append(matched, d)
		}
	}
	c.mu.RUnlock()

	if len(o.Sort) > 0 {
		slices.SortStableFunc(matched, func(a, b store.Doc) int {
			for _, s := range o.Sort {
				cmp := compareField(a[s.Field], b[s.Field])
				if s.Desc {
					cmp = -cmp
				}
				if cmp != 0 {
					return cmp
				}
			}
			return 0
		})
	}

	if o.Skip >= len(matched) {
		matched = matched[:0]
	} else {
		matched = matched[o.Skip:]
	}
	if o.Limit > 0 && len(matched) > o.Limit {
		matched = matched[:o.Limit]
	}

	out := make([]T, 0, len(matched))
	for _, d := range matched {
		v, err := c.schema.Decode(d)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", c.schema.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Collection[T]) Count(ctx context.Context, f store.Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, d := range c.docs {
		if f.Match(d) {
			n++
		}
	}
	return n, nil
}

func (c *Collection[T]) Insert(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := c.schema.Encode(v)

	c.mu.Lock()
	defer c.mu.Unlock()

	key := doc[c.schema.Key]
	for _, d := range c.docs {
		if store.Compare(d[c.schema.Key], key) == 0 {
			return fmt.Errorf("insert %s %v: %w", c.schema.Name, key, domain.ErrAlreadyExists)
		}
	}
	c.docs = append(c.docs, doc)
	return nil
}

func (c *Collection[T]) UpdateOne(ctx context.Context, f store.Filter, u store.Update) (int64, error) {
	return c.update(ctx, f, u, 1)
}

func (c *Collection[T]) UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error) {
	return c.update(ctx, f, u, -1)
}

func (c *Collection[T]) DeleteOne(ctx context.Context, f store.Filter) (int64, error) {
	return c.delete(ctx, f, 1)
}

func (c *Collection[T]) DeleteMany(ctx context.Context, f store.Filter) (int64, error) {
	return c.delete(ctx, f, -1)
}

// update applies u to up to limit matching documents (all when limit < 0).
// Every match is computed before any write, so the update is atomic
// with respect to other callers.
func (c *Collection[T]) update(ctx context.Context, f store.Filter, u store.Update, limit int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if u.IsEmpty() {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		idx     []int
		updated []store.Doc
	)
	for i, d := range c.docs {
		if limit >= 0 && len(idx) == limit {
			break
		}
		if !f.Match(d) {
			continue
		}
		nd, err := u.Apply(d)
		if err != nil {
			return 0, fmt.Errorf("update %s: %w", c.schema.Name, err)
		}
		idx = append(idx, i)
		updated = append(updated, nd)
	}

	for j, i := range idx {
		c.docs[i] = updated[j]
	}
	return int64(len(idx)), nil
}

func (c *Collection[T]) delete(ctx context.Context, f store.Filter, limit int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.docs[:0]
	var n int64
	for _, d := range c.docs {
		if (limit < 0 || n < int64(limit)) && f.Match(d) {
			n++
			continue
		}
		kept = append(kept, d)
	}
	clear(c.docs[len(kept):])
	c.docs = kept
	return n, nil
}

// compareField orders nil values first.
func compareField(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return store.Compare(a, b)
}
