package sources

import (
	"context"
	"log/slog"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const maxMarketRecords = 10

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// Fetch pulls general market news and keeps the entries that actually
// mention the query, capped at maxMarketRecords. The feed is not
// query-addressable, so filtering happens here.
func (c *FinnhubClient) Fetch(ctx context.Context, query, timeFrame string) []Record {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		slog.Error("market fetch failed", "source", c.Name(), "error", err)
		return []Record{}
	}

	records := []Record{}
	for _, news := range res {
		if len(records) == maxMarketRecords {
			break
		}

		r := Record{
			Source: c.Name(),
			Type:   TypeMarket,
		}

		if news.Headline != nil {
			r.Title = *news.Headline
		}

		if news.Summary != nil {
			r.Description = *news.Summary
		}

		if news.Url != nil {
			r.URL = *news.Url
		}

		if news.Datetime != nil {
			r.PublishedAt = time.Unix(*news.Datetime, 0)
		}

		if news.Source != nil && *news.Source != "" {
			r.Source = *news.Source
		}

		if r.Title == "" || r.URL == "" {
			continue
		}

		r.RelevanceScore = Score(r.Title+" "+r.Description, query)
		if r.RelevanceScore == 0 {
			continue
		}

		records = append(records, r)
	}

	return records
}
