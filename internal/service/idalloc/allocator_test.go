package idalloc

import (
	"context"
	"errors"
	"testing"

	"github.com/grouponesailor/group6-tips-server/internal/adapter/memory"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

func tipID(t domain.Tip) int64 { return t.TipID }

func TestAllocator_Monotonic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll := memory.NewCollection(domain.TipSchema)
	alloc := New[domain.Tip](coll, domain.FieldTipID, tipID, 2001)

	var got []int64
	for range 3 {
		id, err := alloc.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if err := coll.Insert(ctx, domain.Tip{TipID: id, TopicID: 1}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		got = append(got, id)
	}

	want := []int64{2001, 2002, 2003}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestAllocator_UsesMaxNotCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll := memory.NewCollection(domain.TipSchema)
	for _, id := range []int64{2001, 2050, 2002} {
		if err := coll.Insert(ctx, domain.Tip{TipID: id}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	id, err := New[domain.Tip](coll, domain.FieldTipID, tipID, 2001).Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if id != 2051 {
		t.Fatalf("Next = %d, want 2051", id)
	}
}

func TestAllocator_SeedOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll := memory.NewCollection(domain.TopicSchema)
	alloc := New[domain.Topic](coll, domain.FieldTopicID, func(t domain.Topic) int64 { return t.TopicID }, 1)

	id, err := alloc.Next(ctx)
	if err != nil || id != 1 {
		t.Fatalf("Next on empty = %d, %v; want 1", id, err)
	}
	if err := coll.Insert(ctx, domain.Topic{TopicID: 40}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	id, err = alloc.Next(ctx)
	if err != nil || id != 41 {
		t.Fatalf("Next = %d, %v; want 41", id, err)
	}
}

type failingFinder struct{}

func (failingFinder) Find(context.Context, store.Filter, ...store.FindOption) ([]domain.Tip, error) {
	return nil, domain.ErrStoreUnavailable
}

func TestAllocator_StoreError(t *testing.T) {
	t.Parallel()

	_, err := New[domain.Tip](failingFinder{}, domain.FieldTipID, tipID, 1).Next(context.Background())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("Next error = %v, want ErrStoreUnavailable", err)
	}
}
