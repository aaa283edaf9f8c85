package domain

import "strings"

// NormalizeQuery trims leading and trailing whitespace from a search query.
// Inner whitespace and case are kept as typed; matching is case-insensitive
// downstream.
func NormalizeQuery(text string) string {
	return strings.TrimSpace(text)
}
