package rest

import (
	"context"
	"sync"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/search"
	"github.com/grouponesailor/group6-tips-server/internal/service/tip"
	"github.com/grouponesailor/group6-tips-server/internal/service/topic"
)

// topicServiceMock is a mock implementation of topicService.
type topicServiceMock struct {
	UpsertTopicFunc func(ctx context.Context, input topic.UpsertTopicInput) (*domain.Topic, bool, error)
	ListTopicsFunc  func(ctx context.Context) ([]domain.Topic, error)
	GetTopicFunc    func(ctx context.Context, topicID int64) (*domain.Topic, error)
	DeleteTopicFunc func(ctx context.Context, topicID int64) error

	calls struct {
		UpsertTopic []topic.UpsertTopicInput
		GetTopic    []int64
		DeleteTopic []int64
	}
	lock sync.RWMutex
}

func (mock *topicServiceMock) UpsertTopic(ctx context.Context, input topic.UpsertTopicInput) (*domain.Topic, bool, error) {
	if mock.UpsertTopicFunc == nil {
		panic("topicServiceMock.UpsertTopicFunc: method is nil but topicService.UpsertTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertTopic = append(mock.calls.UpsertTopic, input)
	mock.lock.Unlock()
	return mock.UpsertTopicFunc(ctx, input)
}

func (mock *topicServiceMock) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	return mock.ListTopicsFunc(ctx)
}

func (mock *topicServiceMock) GetTopic(ctx context.Context, topicID int64) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicServiceMock.GetTopicFunc: method is nil but topicService.GetTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, topicID)
	mock.lock.Unlock()
	return mock.GetTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) DeleteTopic(ctx context.Context, topicID int64) error {
	if mock.DeleteTopicFunc == nil {
		panic("topicServiceMock.DeleteTopicFunc: method is nil but topicService.DeleteTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteTopic = append(mock.calls.DeleteTopic, topicID)
	mock.lock.Unlock()
	return mock.DeleteTopicFunc(ctx, topicID)
}

// UpsertTopicCalls gets all the calls that were made to UpsertTopic.
func (mock *topicServiceMock) UpsertTopicCalls() []topic.UpsertTopicInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertTopic
}

// DeleteTopicCalls gets all the calls that were made to DeleteTopic.
func (mock *topicServiceMock) DeleteTopicCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteTopic
}

// tipServiceMock is a mock implementation of tipService.
type tipServiceMock struct {
	UpsertTipFunc       func(ctx context.Context, input tip.UpsertTipInput) (*domain.Tip, bool, error)
	ListTipsFunc        func(ctx context.Context) ([]domain.Tip, error)
	ListTipsByTopicFunc func(ctx context.Context, topicID int64) ([]domain.Tip, error)
	GetTipFunc          func(ctx context.Context, tipID int64) (*domain.Tip, error)
	DeleteTipFunc       func(ctx context.Context, tipID int64) error

	calls struct {
		UpsertTip       []tip.UpsertTipInput
		ListTipsByTopic []int64
	}
	lock sync.RWMutex
}

func (mock *tipServiceMock) UpsertTip(ctx context.Context, input tip.UpsertTipInput) (*domain.Tip, bool, error) {
	if mock.UpsertTipFunc == nil {
		panic("tipServiceMock.UpsertTipFunc: method is nil but tipService.UpsertTip was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertTip = append(mock.calls.UpsertTip, input)
	mock.lock.Unlock()
	return mock.UpsertTipFunc(ctx, input)
}

func (mock *tipServiceMock) ListTips(ctx context.Context) ([]domain.Tip, error) {
	if mock.ListTipsFunc == nil {
		panic("tipServiceMock.ListTipsFunc: method is nil but tipService.ListTips was just called")
	}
	return mock.ListTipsFunc(ctx)
}

func (mock *tipServiceMock) ListTipsByTopic(ctx context.Context, topicID int64) ([]domain.Tip, error) {
	if mock.ListTipsByTopicFunc == nil {
		panic("tipServiceMock.ListTipsByTopicFunc: method is nil but tipService.ListTipsByTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTipsByTopic = append(mock.calls.ListTipsByTopic, topicID)
	mock.lock.Unlock()
	return mock.ListTipsByTopicFunc(ctx, topicID)
}

func (mock *tipServiceMock) GetTip(ctx context.Context, tipID int64) (*domain.Tip, error) {
	if mock.GetTipFunc == nil {
		panic("tipServiceMock.GetTipFunc: method is nil but tipService.GetTip was just called")
	}
	return mock.GetTipFunc(ctx, tipID)
}

func (mock *tipServiceMock) DeleteTip(ctx context.Context, tipID int64) error {
	if mock.DeleteTipFunc == nil {
		panic("tipServiceMock.DeleteTipFunc: method is nil but tipService.DeleteTip was just called")
	}
	return mock.DeleteTipFunc(ctx, tipID)
}

// UpsertTipCalls gets all the calls that were made to UpsertTip.
func (mock *tipServiceMock) UpsertTipCalls() []tip.UpsertTipInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertTip
}

// ListTipsByTopicCalls gets all the calls that were made to ListTipsByTopic.
func (mock *tipServiceMock) ListTipsByTopicCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTipsByTopic
}

// searchServiceMock is a mock implementation of searchService.
type searchServiceMock struct {
	SearchFunc func(ctx context.Context, input search.SearchInput) (*domain.SearchPage, error)

	calls struct {
		Search []search.SearchInput
	}
	lock sync.RWMutex
}

func (mock *searchServiceMock) Search(ctx context.Context, input search.SearchInput) (*domain.SearchPage, error) {
	if mock.SearchFunc == nil {
		panic("searchServiceMock.SearchFunc: method is nil but searchService.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, input)
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, input)
}

// SearchCalls gets all the calls that were made to Search.
func (mock *searchServiceMock) SearchCalls() []search.SearchInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}
