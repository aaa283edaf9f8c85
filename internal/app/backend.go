package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/adapter/memory"
	"github.com/grouponesailor/group6-tips-server/internal/adapter/postgres"
	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
	"github.com/grouponesailor/group6-tips-server/migrations"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type scopeLocker interface {
	LockScope(ctx context.Context, key string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Backend is the collection store the services run on.
type Backend struct {
	Topics store.Collection[domain.Topic]
	Tips   store.Collection[domain.Tip]
	Tx     txManager
	Locks  scopeLocker
	Pinger pinger
	close  func()
}

// Close releases the store's resources.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewMemoryBackend creates an in-process backend. Data lives until the
// process exits.
func NewMemoryBackend() *Backend {
	return &Backend{
		Topics: memory.NewCollection(domain.TopicSchema),
		Tips:   memory.NewCollection(domain.TipSchema),
		Tx:     memory.NewTxManager(),
		Locks:  memory.NewScopeLocker(),
		Pinger: memory.Pinger{},
	}
}

// OpenBackend opens the backend selected by cfg.Driver. For postgres it
// connects, optionally applies migrations, and returns pool-backed
// collections.
func OpenBackend(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Backend, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("using in-memory store, data is not persisted")
		return NewMemoryBackend(), nil
	}

	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DSN, migrations.FS, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &Backend{
		Topics: postgres.NewCollection(pool, domain.TopicSchema),
		Tips:   postgres.NewCollection(pool, domain.TipSchema),
		Tx:     postgres.NewTxManager(pool),
		Locks:  postgres.NewScopeLocker(),
		Pinger: pool,
		close:  pool.Close,
	}, nil
}
