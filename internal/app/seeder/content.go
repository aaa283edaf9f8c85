package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Content is the seed file: topics in display order, each with its tips.
type Content struct {
	Topics []TopicSeed `yaml:"topics"`
}

// TopicSeed describes one topic to create.
type TopicSeed struct {
	Title       string    `yaml:"title"`
	Description *string   `yaml:"description"`
	IsNew       *bool     `yaml:"is_new"`
	Icon        *string   `yaml:"icon"`
	Tips        []TipSeed `yaml:"tips"`
}

// TipSeed describes one tip to create inside its topic.
type TipSeed struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Media       *MediaSeed `yaml:"media"`
}

// MediaSeed is the optional media of a tip.
type MediaSeed struct {
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	AltText string `yaml:"alt_text"`
}

// LoadContent reads and parses a seed file.
func LoadContent(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content %s: %w", path, err)
	}
	defer f.Close()

	c, err := ParseContent(f)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// ParseContent decodes a seed document. Unknown keys are rejected and
// topic titles must be unique.
func ParseContent(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	seen := make(map[string]bool, len(c.Topics))
	for i, t := range c.Topics {
		key := strings.ToLower(strings.TrimSpace(t.Title))
		if key == "" {
			return nil, fmt.Errorf("topics[%d]: title is required", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("topics[%d]: duplicate title %q", i, t.Title)
		}
		seen[key] = true
	}
	return &c, nil
}
