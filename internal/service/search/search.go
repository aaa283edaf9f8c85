package search

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// Search matches query against the titles and descriptions of topics and
// tips and returns one page ranked by relevance.
//
// Each collection is paged with limit and offset before scoring, so the
// page is not a global ranking and TotalCount only counts the page.
// Topics come before tips with equal scores.
func (s *Service) Search(ctx context.Context, input SearchInput) (*domain.SearchPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	query := domain.NormalizeQuery(input.Query)
	limit := s.limit(input.Limit)

	key, err := s.cache.Key(ctx, query, limit, input.Offset)
	if err != nil {
		s.log.WarnContext(ctx, "search cache unavailable", slog.String("error", err.Error()))
	} else if page, hit, err := s.cache.Get(ctx, key); err != nil {
		s.log.WarnContext(ctx, "search cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return page, nil
	}

	page, err := s.run(ctx, query, limit, input.Offset)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, page); err != nil {
			s.log.WarnContext(ctx, "search cache write failed", slog.String("error", err.Error()))
		}
	}

	s.log.DebugContext(ctx, "search",
		slog.String("query", query),
		slog.Int("limit", limit),
		slog.Int("offset", input.Offset),
		slog.Int("results", page.TotalCount),
	)
	return page, nil
}

func (s *Service) run(ctx context.Context, query string, limit, offset int) (*domain.SearchPage, error) {
	match := store.Filter{}.Or(
		store.Contains(domain.FieldTitle, query),
		store.Contains(domain.FieldDescription, query),
	)

	var (
		topics []domain.Topic
		tips   []domain.Tip
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topics, err = s.topics.Find(gctx, match,
			store.WithSort(domain.FieldDisplayOrder, false),
			store.WithSort(domain.FieldTopicID, false),
			store.WithSkip(offset),
			store.WithLimit(limit),
		)
		if err != nil {
			return fmt.Errorf("search topics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tips, err = s.tips.Find(gctx, match,
			store.WithSort(domain.FieldDisplayOrder, false),
			store.WithSort(domain.FieldTipID, false),
			store.WithSkip(offset),
			store.WithLimit(limit),
		)
		if err != nil {
			return fmt.Errorf("search tips: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(topics)+len(tips))
	for _, t := range topics {
		results = append(results, domain.SearchResult{
			Type:           domain.ResultTopic,
			ID:             t.TopicID,
			Title:          t.Title,
			Description:    t.Description,
			RelevanceScore: Score(query, t.Title),
		})
	}

	tipResults, err := s.tipResults(ctx, query, tips)
	if err != nil {
		return nil, err
	}
	results = append(results, tipResults...)

	slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})

	return &domain.SearchPage{
		Query:      query,
		Limit:      limit,
		Offset:     offset,
		Results:    results,
		TotalCount: len(results),
	}, nil
}

// tipResults scores tips and resolves their topic titles in one batch.
func (s *Service) tipResults(ctx context.Context, query string, tips []domain.Tip) ([]domain.SearchResult, error) {
	if len(tips) == 0 {
		return nil, nil
	}

	loader := newParentLoader(s.topics)
	thunks := make([]func() (*domain.Topic, error), len(tips))
	for i, t := range tips {
		thunks[i] = loader.Load(ctx, t.TopicID)
	}

	results := make([]domain.SearchResult, len(tips))
	for i, t := range tips {
		parent, err := thunks[i]()
		if err != nil {
			return nil, fmt.Errorf("resolve topic %d: %w", t.TopicID, err)
		}

		r := domain.SearchResult{
			Type:           domain.ResultTip,
			ID:             t.TipID,
			Title:          t.Title,
			Description:    &t.Description,
			TopicID:        &t.TopicID,
			RelevanceScore: Score(query, t.Title),
		}
		if parent != nil {
			r.TopicTitle = &parent.Title
		}
		results[i] = r
	}
	return results, nil
}

func (s *Service) limit(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultLimit
	case requested > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	default:
		return requested
	}
}
