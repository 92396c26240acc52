package intel

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"ainews/pkg/sources"
)

type stubClient struct {
	name    string
	records []sources.Record
	calls   int
	panics  bool
}

func (s *stubClient) Fetch(ctx context.Context, query, timeFrame string) []sources.Record {
	s.calls++
	if s.panics {
		panic("stub client exploded")
	}
	return s.records
}

func (s *stubClient) Name() string {
	return s.name
}

func stubRecords(source string, titles ...string) []sources.Record {
	records := make([]sources.Record, 0, len(titles))
	for _, title := range titles {
		records = append(records, sources.Record{
			Title:          title,
			URL:            "https://example.com/" + title,
			Source:         source,
			Type:           sources.TypeNews,
			RelevanceScore: 0.5,
		})
	}
	return records
}

func TestSearchFlattensInRegistrationOrder(t *testing.T) {
	first := &stubClient{name: "first", records: stubRecords("first", "a1", "a2")}
	second := &stubClient{name: "second", records: stubRecords("second", "b1")}

	agg := NewAggregator([]sources.Client{first, second}, NewCache(30*time.Minute))

	set, err := agg.Search(context.Background(), "quantum", "week")

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, set.TotalFound)
	assert.Equal(t, "a1", set.Results[0].Title)
	assert.Equal(t, "a2", set.Results[1].Title)
	assert.Equal(t, "b1", set.Results[2].Title)
	assert.Equal(t, "quantum", set.SearchQuery)
	assert.Equal(t, "week", set.TimeFrame)
}

func TestSearchDefaultsTimeFrame(t *testing.T) {
	client := &stubClient{name: "only", records: stubRecords("only", "a1")}
	agg := NewAggregator([]sources.Client{client}, NewCache(30*time.Minute))

	set, err := agg.Search(context.Background(), "quantum", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, DefaultTimeFrame, set.TimeFrame)
}

func TestSearchEchoesTimeFrame(t *testing.T) {
	client := &stubClient{name: "only", records: stubRecords("only", "a1")}
	agg := NewAggregator([]sources.Client{client}, NewCache(30*time.Minute))

	set, err := agg.Search(context.Background(), "quantum", "day")

	assert.Equal(t, nil, err)
	assert.Equal(t, "day", set.TimeFrame)
}

func TestSearchCacheHitSkipsClients(t *testing.T) {
	client := &stubClient{name: "only", records: stubRecords("only", "a1")}
	agg := NewAggregator([]sources.Client{client}, NewCache(30*time.Minute))

	first, err := agg.Search(context.Background(), "quantum", "week")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, client.calls)

	second, err := agg.Search(context.Background(), "quantum", "week")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.Equal(t, first.TotalFound, second.TotalFound)
}

func TestSearchCacheKeysIndependent(t *testing.T) {
	client := &stubClient{name: "only", records: stubRecords("only", "a1")}
	agg := NewAggregator([]sources.Client{client}, NewCache(30*time.Minute))

	agg.Search(context.Background(), "quantum", "week")
	assert.Equal(t, 1, client.calls)

	agg.Search(context.Background(), "quantum", "day")
	assert.Equal(t, 2, client.calls)

	agg.Search(context.Background(), "fusion", "week")
	assert.Equal(t, 3, client.calls)
}

func TestSearchRefetchesAfterExpiry(t *testing.T) {
	client := &stubClient{name: "only", records: stubRecords("only", "a1")}
	cache := NewCache(30 * time.Minute)

	current := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	agg := NewAggregator([]sources.Client{client}, cache)

	first, err := agg.Search(context.Background(), "quantum", "week")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, client.calls)

	current = current.Add(31 * time.Minute)

	second, err := agg.Search(context.Background(), "quantum", "week")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, client.calls)
	assert.NotEqual(t, first.Timestamp, second.Timestamp)
}

func TestSearchToleratesPanickingClient(t *testing.T) {
	healthy := &stubClient{name: "healthy", records: stubRecords("healthy", "a1", "a2")}
	broken := &stubClient{name: "broken", panics: true}

	agg := NewAggregator([]sources.Client{broken, healthy}, NewCache(30*time.Minute))

	set, err := agg.Search(context.Background(), "quantum", "week")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, set.TotalFound)
	assert.Equal(t, "a1", set.Results[0].Title)
	assert.Equal(t, 1, broken.calls)
}

func TestSearchNoClients(t *testing.T) {
	agg := NewAggregator(nil, NewCache(30*time.Minute))

	set, err := agg.Search(context.Background(), "quantum", "week")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, set.TotalFound)
	assert.Equal(t, "quantum", set.SearchQuery)
}

func TestErrUnavailableMessage(t *testing.T) {
	assert.Equal(t, "search service temporarily unavailable", ErrUnavailable.Error())
}
