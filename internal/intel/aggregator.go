package intel

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ainews/internal/model"
	"ainews/pkg/sources"
)

// ErrUnavailable is the only failure Search surfaces. Source-level
// failures never reach it; the clients absorb those themselves.
var ErrUnavailable = errors.New("search service temporarily unavailable")

const (
	DefaultTimeFrame = "week"

	// fetchTimeout bounds one fan-out so a hanging source cannot
	// stall the whole aggregation.
	fetchTimeout = 10 * time.Second
)

// Aggregator fans a query out to every registered source client,
// collects whatever they return, and memoizes the combined set.
type Aggregator struct {
	clients []sources.Client
	cache   *Cache
}

func NewAggregator(clients []sources.Client, cache *Cache) *Aggregator {
	return &Aggregator{clients: clients, cache: cache}
}

// Search returns the cached result set for (query, timeFrame) when one
// is fresh, and otherwise gathers a new one from all clients. An empty
// timeFrame defaults to "week".
func (a *Aggregator) Search(ctx context.Context, query, timeFrame string) (model.SearchResultSet, error) {
	if timeFrame == "" {
		timeFrame = DefaultTimeFrame
	}

	if set, ok := a.cache.Get(query, timeFrame); ok {
		return set, nil
	}

	set, err := a.gather(ctx, query, timeFrame)
	if err != nil {
		return model.SearchResultSet{}, err
	}

	a.cache.Put(query, timeFrame, set)
	return set, nil
}

func (a *Aggregator) gather(ctx context.Context, query, timeFrame string) (set model.SearchResultSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("aggregation failed", "query", query, "panic", r)
			set = model.SearchResultSet{}
			err = ErrUnavailable
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	// One slot per client keeps the flattened output in registration
	// order regardless of completion order.
	buckets := make([][]sources.Record, len(a.clients))

	var wg sync.WaitGroup
	for i, client := range a.clients {
		wg.Add(1)
		go func(i int, client sources.Client) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("source panicked", "source", client.Name(), "panic", r)
				}
			}()
			buckets[i] = client.Fetch(ctx, query, timeFrame)
		}(i, client)
	}
	wg.Wait()

	results := []sources.Record{}
	for _, bucket := range buckets {
		results = append(results, bucket...)
	}

	return model.SearchResultSet{
		Results:     results,
		TotalFound:  len(results),
		SearchQuery: query,
		TimeFrame:   timeFrame,
		Timestamp:   time.Now(),
	}, nil
}
