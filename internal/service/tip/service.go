// Package tip manages tips: ordered help articles inside a topic.
//
// Every tip write holds the tips writer lock, which covers the shared
// tip ID space and all per-topic orderings.
package tip

import (
	"context"
	"log/slog"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/idalloc"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

type tipStore interface {
	Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]domain.Tip, error)
	Count(ctx context.Context, f store.Filter) (int, error)
	Insert(ctx context.Context, t domain.Tip) error
	UpdateOne(ctx context.Context, f store.Filter, u store.Update) (int64, error)
	UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error)
	DeleteOne(ctx context.Context, f store.Filter) (int64, error)
}

type topicStore interface {
	Count(ctx context.Context, f store.Filter) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type scopeLocker interface {
	LockScope(ctx context.Context, key string) error
}

type searchInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service provides tip management operations.
type Service struct {
	tips   tipStore
	topics topicStore
	tx     txManager
	locks  scopeLocker
	search searchInvalidator
	ids    *idalloc.Allocator[domain.Tip]
	order  *ordering.Manager
	cfg    config.ContentConfig
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new Tip service.
func NewService(
	log *slog.Logger,
	tips tipStore,
	topics topicStore,
	tx txManager,
	locks scopeLocker,
	search searchInvalidator,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		tips:   tips,
		topics: topics,
		tx:     tx,
		locks:  locks,
		search: search,
		ids: idalloc.New[domain.Tip](tips, domain.FieldTipID,
			func(t domain.Tip) int64 { return t.TipID }, cfg.TipIDSeed),
		order: ordering.NewManager(log),
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		log:   log.With("service", "tip"),
	}
}

func (s *Service) find(ctx context.Context, tipID int64) (*domain.Tip, error) {
	found, err := s.tips.Find(ctx, byID(tipID), store.WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.NewNotFoundError(domain.KindTip, tipID)
	}
	return &found[0], nil
}

// requireTopic returns NotFound unless topicID names an existing topic.
func (s *Service) requireTopic(ctx context.Context, topicID int64) error {
	n, err := s.topics.Count(ctx, store.Where(store.Eq(domain.FieldTopicID, topicID)))
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError(domain.KindTopic, topicID)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.search.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "search cache invalidation failed", slog.String("error", err.Error()))
	}
}

func byID(tipID int64) store.Filter {
	return store.Where(store.Eq(domain.FieldTipID, tipID))
}
