package ordering

import (
	"context"
	"sync"

	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// shifterMock is a mock implementation of Shifter.
type shifterMock struct {
	// CountFunc mocks the Count method.
	CountFunc func(ctx context.Context, f store.Filter) (int, error)

	// UpdateManyFunc mocks the UpdateMany method.
	UpdateManyFunc func(ctx context.Context, f store.Filter, u store.Update) (int64, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   store.Filter
		}
		UpdateMany []struct {
			Ctx context.Context
			F   store.Filter
			U   store.Update
		}
	}
	lockCount      sync.RWMutex
	lockUpdateMany sync.RWMutex
}

// Count calls CountFunc.
func (mock *shifterMock) Count(ctx context.Context, f store.Filter) (int, error) {
	if mock.CountFunc == nil {
		panic("shifterMock.CountFunc: method is nil but Shifter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   store.Filter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

// CountCalls gets all the calls that were made to Count.
func (mock *shifterMock) CountCalls() []struct {
	Ctx context.Context
	F   store.Filter
} {
	mock.lockCount.RLock()
	defer mock.lockCount.RUnlock()
	return mock.calls.Count
}

// UpdateMany calls UpdateManyFunc.
func (mock *shifterMock) UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error) {
	if mock.UpdateManyFunc == nil {
		panic("shifterMock.UpdateManyFunc: method is nil but Shifter.UpdateMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   store.Filter
		U   store.Update
	}{Ctx: ctx, F: f, U: u}
	mock.lockUpdateMany.Lock()
	mock.calls.UpdateMany = append(mock.calls.UpdateMany, callInfo)
	mock.lockUpdateMany.Unlock()
	return mock.UpdateManyFunc(ctx, f, u)
}

// UpdateManyCalls gets all the calls that were made to UpdateMany.
func (mock *shifterMock) UpdateManyCalls() []struct {
	Ctx context.Context
	F   store.Filter
	U   store.Update
} {
	mock.lockUpdateMany.RLock()
	defer mock.lockUpdateMany.RUnlock()
	return mock.calls.UpdateMany
}
