// Package search ranks topics and tips against a free-text query.
package search

import (
	"context"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

type topicStore interface {
	Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]domain.Topic, error)
}

type tipStore interface {
	Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]domain.Tip, error)
}

type pageCache interface {
	Key(ctx context.Context, query string, limit, offset int) (string, error)
	Get(ctx context.Context, key string) (*domain.SearchPage, bool, error)
	Set(ctx context.Context, key string, page *domain.SearchPage) error
}

// Service runs searches over topics and tips.
type Service struct {
	topics topicStore
	tips   tipStore
	cache  pageCache
	cfg    config.SearchConfig
	log    *slog.Logger
}

// NewService creates a new Search service.
func NewService(
	log *slog.Logger,
	topics topicStore,
	tips tipStore,
	cache pageCache,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		topics: topics,
		tips:   tips,
		cache:  cache,
		cfg:    cfg,
		log:    log.With("service", "search"),
	}
}
