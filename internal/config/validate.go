package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must be <= max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Database.Driver)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	if c.Search.DefaultLimit <= 0 {
		return fmt.Errorf("search.default_limit must be > 0 (got %d)", c.Search.DefaultLimit)
	}
	if c.Search.MaxLimit < c.Search.DefaultLimit {
		return fmt.Errorf("search.max_limit (%d) must be >= default_limit (%d)", c.Search.MaxLimit, c.Search.DefaultLimit)
	}

	if c.RateLimit.Enabled && c.RateLimit.SearchPerMinute <= 0 {
		return fmt.Errorf("rate_limit.search_per_minute must be > 0 (got %d)", c.RateLimit.SearchPerMinute)
	}

	return nil
}

func (c *ContentConfig) validate() error {
	if c.TopicIDSeed <= 0 {
		return fmt.Errorf("topic_id_seed must be > 0 (got %d)", c.TopicIDSeed)
	}
	if c.TipIDSeed <= 0 {
		return fmt.Errorf("tip_id_seed must be > 0 (got %d)", c.TipIDSeed)
	}
	if c.TipCountConcurrency <= 0 {
		return fmt.Errorf("tip_count_concurrency must be > 0 (got %d)", c.TipCountConcurrency)
	}

	icons, err := ParseIcons(c.DefaultIconsRaw)
	if err != nil {
		return fmt.Errorf("default_icons: %w", err)
	}
	c.DefaultIcons = icons

	return nil
}

// ParseIcons parses a comma-separated list of absolute icon URLs.
// An empty string returns a nil slice.
func ParseIcons(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	icons := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		u, err := url.Parse(p)
		if err != nil || !u.IsAbs() {
			return nil, fmt.Errorf("invalid icon URL %q", p)
		}
		icons = append(icons, p)
	}

	return icons, nil
}
