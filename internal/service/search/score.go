package search

import (
	"strings"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// Score rates a hit whose title or description contains query. Matching
// ignores case. A title starting with the query scores highest, then a
// title containing it anywhere; anything else matched on the description.
func Score(query, title string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(title)
	switch {
	case strings.HasPrefix(t, q):
		return domain.ScoreTitlePrefix
	case strings.Contains(t, q):
		return domain.ScoreTitle
	default:
		return domain.ScoreDescription
	}
}
