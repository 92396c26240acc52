package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ainews/internal/model"
	"ainews/pkg/analysis"
	"ainews/pkg/sources"

	"github.com/gin-gonic/gin"
)

type Searcher interface {
	Search(ctx context.Context, query, timeFrame string) (model.SearchResultSet, error)
}

type AnalysisGenerator interface {
	Generate(ctx context.Context, input analysis.Input) (*analysis.Analysis, error)
	Name() string
}

type AnalyzeHandler struct {
	searcher  Searcher
	generator AnalysisGenerator
}

func NewAnalyzeHandler(searcher Searcher, generator AnalysisGenerator) *AnalyzeHandler {
	return &AnalyzeHandler{searcher: searcher, generator: generator}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid analyze request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	query := req.Query
	if req.Region != "" && !strings.EqualFold(req.Region, "global") {
		query = query + " " + req.Region
	}

	set, err := h.searcher.Search(c.Request.Context(), query, req.TimeFrame)
	if err != nil {
		slog.Error("search failed", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search service temporarily unavailable"})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), analysis.Input{
		Query:     query,
		TimeFrame: set.TimeFrame,
		Depth:     req.AnalysisDepth,
		Records:   set.Results,
	})
	if err != nil {
		slog.Error("analysis generation failed", "query", query, "generator", h.generator.Name(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search service temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Query:       query,
		TimeFrame:   set.TimeFrame,
		Results:     toResultSetResponse(set),
		Analysis:    toAnalysisResponse(result),
		GeneratedAt: time.Now().Format(time.RFC3339),
	})
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func toRecordResponse(r sources.Record) RecordResponse {
	return RecordResponse{
		Title:          r.Title,
		Description:    r.Description,
		URL:            r.URL,
		PublishedAt:    r.PublishedAt.Format(time.RFC3339),
		Source:         r.Source,
		Type:           r.Type,
		RelevanceScore: r.RelevanceScore,
	}
}

func toResultSetResponse(set model.SearchResultSet) ResultSetResponse {
	records := make([]RecordResponse, len(set.Results))
	for i, r := range set.Results {
		records[i] = toRecordResponse(r)
	}

	return ResultSetResponse{
		Results:     records,
		TotalFound:  set.TotalFound,
		SearchQuery: set.SearchQuery,
		TimeFrame:   set.TimeFrame,
		Timestamp:   set.Timestamp.Format(time.RFC3339),
	}
}

func toAnalysisResponse(a *analysis.Analysis) AnalysisResponse {
	return AnalysisResponse{
		Summary:         a.Summary,
		KeyInsights:     a.KeyInsights,
		Recommendations: a.Recommendations,
		Confidence:      a.Confidence,
		Depth:           a.Depth,
	}
}
