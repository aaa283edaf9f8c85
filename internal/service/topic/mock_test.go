package topic

import (
	"context"
	"sync"
)

// txManagerMock is a mock implementation of txManager.
type txManagerMock struct {
	// RunInTxFunc mocks the RunInTx method.
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

// RunInTx calls RunInTxFunc.
func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

// RunInTxCalls gets all the calls that were made to RunInTx.
func (mock *txManagerMock) RunInTxCalls() []struct{ Ctx context.Context } {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}

// scopeLockerMock is a mock implementation of scopeLocker.
type scopeLockerMock struct {
	// LockScopeFunc mocks the LockScope method.
	LockScopeFunc func(ctx context.Context, key string) error

	calls struct {
		LockScope []struct {
			Ctx context.Context
			Key string
		}
	}
	lockLockScope sync.RWMutex
}

// LockScope calls LockScopeFunc.
func (mock *scopeLockerMock) LockScope(ctx context.Context, key string) error {
	if mock.LockScopeFunc == nil {
		panic("scopeLockerMock.LockScopeFunc: method is nil but scopeLocker.LockScope was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockLockScope.Lock()
	mock.calls.LockScope = append(mock.calls.LockScope, callInfo)
	mock.lockLockScope.Unlock()
	return mock.LockScopeFunc(ctx, key)
}

// LockScopeCalls gets all the calls that were made to LockScope.
func (mock *scopeLockerMock) LockScopeCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockLockScope.RLock()
	defer mock.lockLockScope.RUnlock()
	return mock.calls.LockScope
}

// searchInvalidatorMock is a mock implementation of searchInvalidator.
type searchInvalidatorMock struct {
	// InvalidateFunc mocks the Invalidate method.
	InvalidateFunc func(ctx context.Context) error

	calls struct {
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockInvalidate sync.RWMutex
}

// Invalidate calls InvalidateFunc.
func (mock *searchInvalidatorMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("searchInvalidatorMock.InvalidateFunc: method is nil but searchInvalidator.Invalidate was just called")
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx)
}

// InvalidateCalls gets all the calls that were made to Invalidate.
func (mock *searchInvalidatorMock) InvalidateCalls() []struct{ Ctx context.Context } {
	mock.lockInvalidate.RLock()
	defer mock.lockInvalidate.RUnlock()
	return mock.calls.Invalidate
}

// fixedIcon always returns the same icon.
type fixedIcon string

func (f fixedIcon) DefaultIcon() string { return string(f) }
