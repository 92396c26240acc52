package main

import (
	"log"
	"log/slog"

	"ainews/db"
	"ainews/internal/config"
	"ainews/internal/handler"
	"ainews/internal/intel"
	"ainews/internal/ratelimit"
	"ainews/pkg/analysis"
	"ainews/pkg/sources"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg := config.Load()

	clients := []sources.Client{
		sources.NewNewsClient(cfg.NewsAPIKey),
		sources.NewArxivClient(),
	}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, sources.NewFinnhubClient(cfg.FinnhubAPIKey))
	}

	cache := intel.NewCache(cfg.CacheTTL)
	aggregator := intel.NewAggregator(clients, cache)

	generator := analysis.NewGenerator(cfg.AnthropicAPIKey, cfg.OpenAIAPIKey)
	slog.Info("analysis generator selected", "generator", generator.Name())

	analyzeHandler := handler.NewAnalyzeHandler(aggregator, generator)
	trendingHandler := handler.NewTrendingHandler(aggregator, cfg.TrendingTopics)

	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		perMinute := int(cfg.RateLimitRPS * 60)
		limiter = ratelimit.NewRedisLimiter(perMinute)
		slog.Info("rate limiting via Redis", "requestsPerMinute", perMinute)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/health", analyzeHandler.GetHealth)

	api := r.Group("/api", ratelimit.Middleware(limiter))
	api.POST("/analyze", analyzeHandler.Analyze)
	api.GET("/trending", trendingHandler.GetTrending)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
