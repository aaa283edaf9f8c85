package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/tip"
	"github.com/grouponesailor/group6-tips-server/internal/service/topic"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"topics", "tips"}

type topicService interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
}

type tipService interface {
	ListTipsByTopic(ctx context.Context, topicID int64) ([]domain.Tip, error)
	CreateTip(ctx context.Context, input tip.CreateTipInput) (*domain.Tip, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline loads seed content through the topic and tip services, so
// seeded entities get IDs and order keys exactly like API writes. Entities
// whose title already exists are skipped, which makes reruns safe.
type Pipeline struct {
	log     *slog.Logger
	topics  topicService
	tips    tipService
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, topics topicService, tips tipService, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		topics:  topics,
		tips:    tips,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run seeds content. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, content *Content, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "topics":
			result = p.runTopics(ctx, content.Topics)
		case "tips":
			result = p.runTips(ctx, content.Topics)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.WarnContext(ctx, "phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runTopics appends every topic not already present, in file order.
func (p *Pipeline) runTopics(ctx context.Context, seeds []TopicSeed) PhaseResult {
	existing, err := p.topicIDs(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	var result PhaseResult
	for _, seed := range seeds {
		if _, ok := existing[titleKey(seed.Title)]; ok {
			result.Skipped++
			continue
		}

		input := topic.CreateTopicInput{
			Title:       seed.Title,
			Description: seed.Description,
			IsNew:       seed.IsNew,
			Icon:        seed.Icon,
		}
		if p.cfg.DryRun {
			if err := input.Validate(); err != nil {
				p.logEntityError(ctx, "topic", seed.Title, err)
				result.Errors++
				continue
			}
			result.Skipped++
			continue
		}

		if _, err := p.topics.CreateTopic(ctx, input); err != nil {
			p.logEntityError(ctx, "topic", seed.Title, err)
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}

// runTips appends the tips of every seeded topic that exists by title.
func (p *Pipeline) runTips(ctx context.Context, seeds []TopicSeed) PhaseResult {
	topicIDs, err := p.topicIDs(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	var result PhaseResult
	for _, seed := range seeds {
		topicID, ok := topicIDs[titleKey(seed.Title)]
		if !ok {
			// Dry runs never create the parent.
			result.Skipped += len(seed.Tips)
			continue
		}

		existing, err := p.tipTitles(ctx, topicID)
		if err != nil {
			return PhaseResult{Err: err}
		}

		for _, ts := range seed.Tips {
			if existing[titleKey(ts.Title)] {
				result.Skipped++
				continue
			}

			input := tip.CreateTipInput{
				TopicID:     topicID,
				Title:       ts.Title,
				Description: ts.Description,
				Media:       ts.Media.toDomain(),
			}
			if p.cfg.DryRun {
				if err := input.Validate(); err != nil {
					p.logEntityError(ctx, "tip", ts.Title, err)
					result.Errors++
					continue
				}
				result.Skipped++
				continue
			}

			if _, err := p.tips.CreateTip(ctx, input); err != nil {
				p.logEntityError(ctx, "tip", ts.Title, err)
				result.Errors++
				continue
			}
			existing[titleKey(ts.Title)] = true
			result.Inserted++
		}
	}
	return result
}

func (p *Pipeline) topicIDs(ctx context.Context) (map[string]int64, error) {
	topics, err := p.topics.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	ids := make(map[string]int64, len(topics))
	for _, t := range topics {
		ids[titleKey(t.Title)] = t.TopicID
	}
	return ids, nil
}

func (p *Pipeline) tipTitles(ctx context.Context, topicID int64) (map[string]bool, error) {
	tips, err := p.tips.ListTipsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list tips of topic %d: %w", topicID, err)
	}
	titles := make(map[string]bool, len(tips))
	for _, t := range tips {
		titles[titleKey(t.Title)] = true
	}
	return titles, nil
}

func (p *Pipeline) logEntityError(ctx context.Context, kind, title string, err error) {
	p.log.WarnContext(ctx, "seed entity rejected",
		slog.String("kind", kind),
		slog.String("title", title),
		slog.String("error", err.Error()),
	)
}

func (m *MediaSeed) toDomain() *domain.Media {
	if m == nil {
		return nil
	}
	return &domain.Media{Type: m.Type, URL: m.URL, AltText: m.AltText}
}

func titleKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
