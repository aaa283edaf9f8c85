package domain

// Search result entity types.
const (
	ResultTopic = "topic"
	ResultTip   = "tip"
)

// Relevance scores assigned by the search engine.
const (
	ScoreTitlePrefix = 1.0
	ScoreTitle       = 0.8
	ScoreDescription = 0.6
)

// SearchResult is one ranked hit of a cross-entity search.
type SearchResult struct {
	Type        string
	ID          int64
	Title       string
	Description *string
	// TopicID and TopicTitle are set for tip hits. TopicTitle is nil when
	// the parent topic no longer exists.
	TopicID        *int64
	TopicTitle     *string
	RelevanceScore float64
}

// SearchPage is a merged page of results. TotalCount is the size of
// Results, not the number of matches in the whole corpus.
type SearchPage struct {
	Query      string
	Limit      int
	Offset     int
	Results    []SearchResult
	TotalCount int
}
