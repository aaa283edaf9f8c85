package postgres

import (
	"context"
	"errors"
)

const lockScopeSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

// ScopeLocker serializes writers of one ordering scope with
// transaction-scoped advisory locks. The lock is released on commit or
// rollback.
type ScopeLocker struct{}

// NewScopeLocker creates a ScopeLocker.
func NewScopeLocker() *ScopeLocker {
	return &ScopeLocker{}
}

// LockScope blocks until the advisory lock for key is held by the
// transaction in ctx. It must be called inside TxManager.RunInTx.
func (l *ScopeLocker) LockScope(ctx context.Context, key string) error {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return errors.New("lock scope " + key + ": no transaction in context")
	}
	if _, err := tx.Exec(ctx, lockScopeSQL, key); err != nil {
		return mapError(err, "lock scope "+key)
	}
	return nil
}
