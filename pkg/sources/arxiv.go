package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const maxSummaryChars = 200

type ArxivClient struct {
	httpClient *http.Client
	parser     *gofeed.Parser
}

func NewArxivClient() *ArxivClient {
	return &ArxivClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		parser:     gofeed.NewParser(),
	}
}

func (c *ArxivClient) Name() string {
	return "arXiv"
}

// Fetch returns the five most recently submitted preprints matching the
// query. Failures of any kind yield an empty slice, never an error.
func (c *ArxivClient) Fetch(ctx context.Context, query, timeFrame string) []Record {
	records, err := c.fetchLive(ctx, query)
	if err != nil {
		slog.Error("academic fetch failed", "source", c.Name(), "error", err)
		return []Record{}
	}

	return records
}

func (c *ArxivClient) fetchLive(ctx context.Context, query string) ([]Record, error) {
	endpoint := fmt.Sprintf(
		"http://export.arxiv.org/api/query?search_query=all:%s&start=0&max_results=5&sortBy=submittedDate&sortOrder=descending",
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("arxiv request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv fetch: unexpected status %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("arxiv parse: %w", err)
	}

	records := make([]Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := collapseWhitespace(item.Title)
		summary := truncate(collapseWhitespace(item.Description), maxSummaryChars)

		// Atom <id> is the stable abstract URI; fall back to the link.
		link := item.GUID
		if link == "" {
			link = item.Link
		}

		if title == "" || link == "" {
			continue
		}

		publishedAt := time.Time{}
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}

		records = append(records, Record{
			Title:          title,
			Description:    summary,
			URL:            link,
			PublishedAt:    publishedAt,
			Source:         c.Name(),
			Type:           TypeAcademic,
			RelevanceScore: Score(title+" "+summary, query),
		})
	}

	return records, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// collapseWhitespace flattens the newline-wrapped text arXiv returns in
// titles and abstracts.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
