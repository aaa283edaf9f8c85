package search

import (
	"context"
	"sync"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// pageCacheMock is a mock implementation of pageCache.
type pageCacheMock struct {
	// KeyFunc mocks the Key method.
	KeyFunc func(ctx context.Context, query string, limit, offset int) (string, error)

	// GetFunc mocks the Get method.
	GetFunc func(ctx context.Context, key string) (*domain.SearchPage, bool, error)

	// SetFunc mocks the Set method.
	SetFunc func(ctx context.Context, key string, page *domain.SearchPage) error

	calls struct {
		Key []struct {
			Query  string
			Limit  int
			Offset int
		}
		Set []struct {
			Key  string
			Page *domain.SearchPage
		}
	}
	lockKey sync.RWMutex
	lockSet sync.RWMutex
}

// Key calls KeyFunc.
func (mock *pageCacheMock) Key(ctx context.Context, query string, limit, offset int) (string, error) {
	if mock.KeyFunc == nil {
		panic("pageCacheMock.KeyFunc: method is nil but pageCache.Key was just called")
	}
	mock.lockKey.Lock()
	mock.calls.Key = append(mock.calls.Key, struct {
		Query  string
		Limit  int
		Offset int
	}{Query: query, Limit: limit, Offset: offset})
	mock.lockKey.Unlock()
	return mock.KeyFunc(ctx, query, limit, offset)
}

// KeyCalls gets all the calls that were made to Key.
func (mock *pageCacheMock) KeyCalls() []struct {
	Query  string
	Limit  int
	Offset int
} {
	mock.lockKey.RLock()
	defer mock.lockKey.RUnlock()
	return mock.calls.Key
}

// Get calls GetFunc.
func (mock *pageCacheMock) Get(ctx context.Context, key string) (*domain.SearchPage, bool, error) {
	if mock.GetFunc == nil {
		panic("pageCacheMock.GetFunc: method is nil but pageCache.Get was just called")
	}
	return mock.GetFunc(ctx, key)
}

// Set calls SetFunc.
func (mock *pageCacheMock) Set(ctx context.Context, key string, page *domain.SearchPage) error {
	if mock.SetFunc == nil {
		panic("pageCacheMock.SetFunc: method is nil but pageCache.Set was just called")
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Key  string
		Page *domain.SearchPage
	}{Key: key, Page: page})
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, page)
}

// SetCalls gets all the calls that were made to Set.
func (mock *pageCacheMock) SetCalls() []struct {
	Key  string
	Page *domain.SearchPage
} {
	mock.lockSet.RLock()
	defer mock.lockSet.RUnlock()
	return mock.calls.Set
}

func missCache() *pageCacheMock {
	return &pageCacheMock{
		KeyFunc: func(ctx context.Context, query string, limit, offset int) (string, error) {
			return "k", nil
		},
		GetFunc: func(ctx context.Context, key string) (*domain.SearchPage, bool, error) {
			return nil, false, nil
		},
		SetFunc: func(ctx context.Context, key string, page *domain.SearchPage) error {
			return nil
		},
	}
}

// failingTopics is a topic store whose reads always fail.
type failingTopics struct{ err error }

func (f failingTopics) Find(context.Context, store.Filter, ...store.FindOption) ([]domain.Topic, error) {
	return nil, f.err
}
