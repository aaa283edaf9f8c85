package domain

import "time"

// Topic is a help-center category holding an ordered list of tips.
// Topics share one global display order.
type Topic struct {
	TopicID      int64     `db:"topic_id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	DisplayOrder int       `db:"display_order"`
	IsNew        bool      `db:"is_new"`
	Icon         string    `db:"icon"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	TipCount     int       `db:"-"` // computed, not stored
}

// Tip is a single help article inside a topic.
// Tips are ordered within their topic.
type Tip struct {
	TipID        int64     `db:"tip_id"`
	TopicID      int64     `db:"topic_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Media        *Media    `db:"media"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Media is an optional illustration attached to a tip.
type Media struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

// Media types accepted on input.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// IsValidMediaType reports whether t is a known media type.
func IsValidMediaType(t string) bool {
	switch t {
	case MediaImage, MediaVideo:
		return true
	}
	return false
}
