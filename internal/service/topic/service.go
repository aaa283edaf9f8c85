package topic

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/idalloc"
	"github.com/grouponesailor/group6-tips-server/internal/service/ordering"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

type topicStore interface {
	Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]domain.Topic, error)
	Count(ctx context.Context, f store.Filter) (int, error)
	Insert(ctx context.Context, t domain.Topic) error
	UpdateOne(ctx context.Context, f store.Filter, u store.Update) (int64, error)
	UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error)
	DeleteOne(ctx context.Context, f store.Filter) (int64, error)
}

type tipStore interface {
	Count(ctx context.Context, f store.Filter) (int, error)
	DeleteMany(ctx context.Context, f store.Filter) (int64, error)
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

// IconProvider supplies the icon of a topic created without one.
type IconProvider interface {
	DefaultIcon() string
}

// Service provides topic management operations.
type Service struct {
	topics topicStore
	tips   tipStore
	tx     txManager
	locks  scopeLocker
	search searchInvalidator
	icons  IconProvider
	ids    *idalloc.Allocator[domain.Topic]
	order  *ordering.Manager
	cfg    config.ContentConfig
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicStore,
	tips tipStore,
	tx txManager,
	locks scopeLocker,
	search searchInvalidator,
	icons IconProvider,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		topics: topics,
		tips:   tips,
		tx:     tx,
		locks:  locks,
		search: search,
		icons:  icons,
		ids: idalloc.New[domain.Topic](topics, domain.FieldTopicID,
			func(t domain.Topic) int64 { return t.TopicID }, cfg.TopicIDSeed),
		order: ordering.NewManager(log),
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		log:   log.With("service", "topic"),
	}
}

// find loads one topic without its tip count.
func (s *Service) find(ctx context.Context, topicID int64) (*domain.Topic, error) {
	found, err := s.topics.Find(ctx, byID(topicID), store.WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.NewNotFoundError(domain.KindTopic, topicID)
	}
	return &found[0], nil
}

func (s *Service) countTips(ctx context.Context, topicID int64) (int, error) {
	return s.tips.Count(ctx, store.Where(store.Eq(domain.FieldTopicID, topicID)))
}

// invalidate drops cached search pages after a write. Failures only
// leave stale pages until their TTL, so they are logged.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.search.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "search cache invalidation failed", slog.String("error", err.Error()))
	}
}

func byID(topicID int64) store.Filter {
	return store.Where(store.Eq(domain.FieldTopicID, topicID))
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
