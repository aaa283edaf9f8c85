package memory

import (
	"context"
	"sync"
)

type txCtxKey struct{}

// TxManager serializes writers with one process-wide mutex. It gives the
// same single-writer guarantee as the PostgreSQL scope locks, but there is
// no rollback: writes made before an error stay applied.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn while holding the writer mutex. Nested calls join the
// outer one.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txCtxKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txCtxKey{}, struct{}{}))
}

// ScopeLocker is a no-op: TxManager already admits one writer at a time.
type ScopeLocker struct{}

// NewScopeLocker creates a ScopeLocker.
func NewScopeLocker() *ScopeLocker {
	return &ScopeLocker{}
}

// LockScope always succeeds.
func (ScopeLocker) LockScope(context.Context, string) error {
	return nil
}

// Pinger reports the in-memory store as always reachable.
type Pinger struct{}

// Ping always succeeds.
func (Pinger) Ping(context.Context) error {
	return nil
}
