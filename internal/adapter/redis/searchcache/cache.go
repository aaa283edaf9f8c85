// Package searchcache caches search result pages in Redis.
//
// Entries are keyed by a generation number stored under versionKey.
// Invalidate bumps the generation, which orphans every cached page at
// once; orphans expire through their TTL.
package searchcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"

	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

const versionKey = "search:version"

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// Cache stores search pages in Redis.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a Cache whose entries live for ttl.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Key returns the cache key for a page under the current generation.
func (c *Cache) Key(ctx context.Context, query string, limit, offset int) (string, error) {
	gen, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("search cache version: %w", err)
	}
	return fmt.Sprintf("search:v%d:%d:%d:%s", gen, limit, offset, query), nil
}

// Get returns the cached page for key, if any.
func (c *Cache) Get(ctx context.Context, key string) (*domain.SearchPage, bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("search cache get: %w", err)
	}

	var page domain.SearchPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false, fmt.Errorf("search cache decode: %w", err)
	}
	return &page, true, nil
}

// Set stores page under key.
func (c *Cache) Set(ctx context.Context, key string, page *domain.SearchPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("search cache set: %w", err)
	}
	return nil
}

// Invalidate drops every cached page.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("search cache invalidate: %w", err)
	}
	return nil
}

// Nop is a cache that never hits.
type Nop struct{}

func (Nop) Key(context.Context, string, int, int) (string, error) { return "", nil }

func (Nop) Get(context.Context, string) (*domain.SearchPage, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, string, *domain.SearchPage) error { return nil }

func (Nop) Invalidate(context.Context) error { return nil }

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
