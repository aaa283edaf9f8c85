package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// SeedTopic inserts a topic row directly, bypassing the services.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, id int64, title string, order int) domain.Topic {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		TopicID:      id,
		Title:        title,
		DisplayOrder: order,
		IsNew:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (topic_id, title, display_order, is_new, icon, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		topic.TopicID, topic.Title, topic.DisplayOrder, topic.IsNew, topic.Icon, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed topic %d: %v", id, err)
	}
	return topic
}

// SeedTip inserts a tip row directly, bypassing the services.
func SeedTip(t *testing.T, pool *pgxpool.Pool, id, topicID int64, title string, order int) domain.Tip {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tip := domain.Tip{
		TipID:        id,
		TopicID:      topicID,
		Title:        title,
		Description:  title + " description",
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tips (tip_id, topic_id, title, description, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tip.TipID, tip.TopicID, tip.Title, tip.Description, tip.DisplayOrder, tip.CreatedAt, tip.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed tip %d: %v", id, err)
	}
	return tip
}
