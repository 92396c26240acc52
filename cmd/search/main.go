package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"ainews/internal/config"
	"ainews/internal/intel"
	"ainews/pkg/sources"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <query> [timeFrame]", os.Args[0])
	}
	query := os.Args[1]

	timeFrame := ""
	if len(os.Args) > 2 {
		timeFrame = os.Args[2]
	}

	cfg := config.Load()

	clients := []sources.Client{
		sources.NewNewsClient(cfg.NewsAPIKey),
		sources.NewArxivClient(),
	}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, sources.NewFinnhubClient(cfg.FinnhubAPIKey))
	}

	aggregator := intel.NewAggregator(clients, intel.NewCache(cfg.CacheTTL))

	set, err := aggregator.Search(context.Background(), query, timeFrame)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	slog.Info("search complete", "query", set.SearchQuery, "timeFrame", set.TimeFrame, "totalFound", set.TotalFound)

	out, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Fatalf("error encoding results: %v", err)
	}
	fmt.Println(string(out))
}
