package handler

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ainews/internal/model"
	"ainews/pkg/sources"

	"github.com/gin-gonic/gin"
)

// trendingTimeFrame keeps the trending view focused on the last day of
// coverage rather than the default week window.
const trendingTimeFrame = "day"

type TrendingHandler struct {
	searcher Searcher
	topics   []string
}

func NewTrendingHandler(searcher Searcher, topics []string) *TrendingHandler {
	return &TrendingHandler{searcher: searcher, topics: topics}
}

func (h *TrendingHandler) GetTrending(c *gin.Context) {
	// One slot per topic keeps the response in configuration order
	// regardless of which search finishes first.
	topics := make([]TrendingTopicResponse, len(h.topics))

	var wg sync.WaitGroup
	for i, topic := range h.topics {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()

			set, err := h.searcher.Search(c.Request.Context(), topic, trendingTimeFrame)
			if err != nil {
				slog.Error("trending search failed", "topic", topic, "error", err)
				topics[i] = TrendingTopicResponse{Topic: topic}
				return
			}
			topics[i] = toTrendingTopicResponse(topic, set)
		}(i, topic)
	}
	wg.Wait()

	c.JSON(http.StatusOK, TrendingResponse{
		Topics:      topics,
		GeneratedAt: time.Now().Format(time.RFC3339),
	})
}

func toTrendingTopicResponse(topic string, set model.SearchResultSet) TrendingTopicResponse {
	resp := TrendingTopicResponse{
		Topic: topic,
		Count: set.TotalFound,
	}
	if story := topStory(set.Results); story != nil {
		record := toRecordResponse(*story)
		resp.TopStory = &record
	}
	return resp
}

func topStory(records []sources.Record) *sources.Record {
	if len(records) == 0 {
		return nil
	}

	top := &records[0]
	for i := range records {
		if records[i].RelevanceScore > top.RelevanceScore {
			top = &records[i]
		}
	}
	return top
}
