package ordering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// Writer lock keys. A writer needing both takes LockTopics first.
const (
	LockTopics = "topics"
	LockTips   = "tips"
)

// Shifter is the part of a collection the manager needs.
type Shifter interface {
	Count(ctx context.Context, f store.Filter) (int, error)
	UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error)
}

// Scope is one ordering domain: all topics, or the tips of one topic.
type Scope struct {
	// Name identifies the scope in logs and errors.
	Name string
	Coll Shifter
	// Filter selects the members of the scope.
	Filter store.Filter
	// KeyField is the identity field used to exclude the moving member.
	KeyField string
}

// TopicsScope is the global topic ordering.
func TopicsScope(coll Shifter) Scope {
	return Scope{
		Name:     "topics",
		Coll:     coll,
		KeyField: domain.FieldTopicID,
	}
}

// TipsScope is the ordering of the tips of one topic.
func TipsScope(coll Shifter, topicID int64) Scope {
	return Scope{
		Name:     fmt.Sprintf("tips:%d", topicID),
		Coll:     coll,
		Filter:   store.Where(store.Eq(domain.FieldTopicID, topicID)),
		KeyField: domain.FieldTipID,
	}
}

// Manager executes order plans against a scope. Callers hold the scope's
// writer lock and have already checked that the member exists.
type Manager struct {
	log *slog.Logger
}

// NewManager creates a Manager.
func NewManager(log *slog.Logger) *Manager {
	return &Manager{log: log.With("component", "ordering")}
}

// Place makes room for a new member and returns the key it must be
// stored with.
func (m *Manager) Place(ctx context.Context, s Scope, requested *int) (int, error) {
	size, err := s.Coll.Count(ctx, s.Filter)
	if err != nil {
		return 0, fmt.Errorf("place in %s: count: %w", s.Name, err)
	}

	plan, err := PlanInsert(size, requested)
	if err != nil {
		return 0, err
	}
	if err := m.apply(ctx, s, plan, nil); err != nil {
		return 0, fmt.Errorf("place in %s: %w", s.Name, err)
	}
	return plan.Key, nil
}

// Move shifts the other members for a member moving from old to
// requested and returns the member's new key. The member itself is not
// written.
func (m *Manager) Move(ctx context.Context, s Scope, memberID int64, old int, requested *int) (int, error) {
	if requested == nil {
		return old, nil
	}

	size, err := s.Coll.Count(ctx, s.Filter)
	if err != nil {
		return 0, fmt.Errorf("move in %s: count: %w", s.Name, err)
	}

	plan, err := PlanMove(size, old, requested)
	if err != nil {
		return 0, err
	}
	if err := m.apply(ctx, s, plan, &memberID); err != nil {
		return 0, fmt.Errorf("move in %s: %w", s.Name, err)
	}
	return plan.Key, nil
}

// Close shifts the members after old up by one, closing the gap left by
// memberID.
func (m *Manager) Close(ctx context.Context, s Scope, memberID int64, old int) error {
	if err := m.apply(ctx, s, PlanRemove(old), &memberID); err != nil {
		return fmt.Errorf("close gap in %s: %w", s.Name, err)
	}
	return nil
}

func (m *Manager) apply(ctx context.Context, s Scope, plan Plan, memberID *int64) error {
	if plan.Shift == nil {
		m.log.DebugContext(ctx, "order unchanged",
			slog.String("scope", s.Name),
			slog.String("kind", plan.Kind.String()),
			slog.Int("key", plan.Key),
		)
		return nil
	}

	sh := plan.Shift
	f := s.Filter.And(store.Gte(domain.FieldDisplayOrder, sh.From))
	if sh.To != Unbounded {
		f = f.And(store.Lte(domain.FieldDisplayOrder, sh.To))
	}
	if memberID != nil {
		f = f.And(store.Ne(s.KeyField, *memberID))
	}

	n, err := s.Coll.UpdateMany(ctx, f, store.Increment(domain.FieldDisplayOrder, sh.Delta))
	if err != nil {
		return fmt.Errorf("shift %s: %w", sh, err)
	}

	m.log.DebugContext(ctx, "order shifted",
		slog.String("scope", s.Name),
		slog.String("kind", plan.Kind.String()),
		slog.String("range", sh.String()),
		slog.Int64("moved", n),
	)
	return nil
}
