package sources

import (
	"context"
	"time"
)

const (
	TypeNews     = "news"
	TypeAcademic = "academic"
	TypeMarket   = "market"
)

// Record is a normalized search hit from any source.
type Record struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"publishedAt"`
	Source         string    `json:"source"`
	Type           string    `json:"type"`
	RelevanceScore float64   `json:"relevanceScore"`
}

// Client fetches records matching a query. Fetch never fails: clients
// absorb their own errors and return fallback records or nothing.
type Client interface {
	Fetch(ctx context.Context, query, timeFrame string) []Record
	Name() string
}
