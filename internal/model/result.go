package model

import (
	"time"

	"ainews/pkg/sources"
)

// SearchResultSet is the aggregated output for one (query, timeFrame)
// pair. It is immutable after construction and shared by concurrent
// cache readers.
type SearchResultSet struct {
	Results     []sources.Record `json:"results"`
	TotalFound  int              `json:"totalFound"`
	SearchQuery string           `json:"searchQuery"`
	TimeFrame   string           `json:"timeFrame"`
	Timestamp   time.Time        `json:"timestamp"`
}
