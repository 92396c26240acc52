package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            string
	NewsAPIKey      string
	FinnhubAPIKey   string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	CacheTTL        time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	RedisURL        string
	FrontendURL     string
	TrendingTopics  []string
}

var defaultTrendingTopics = []string{
	"artificial intelligence",
	"quantum computing",
	"cybersecurity",
	"biotechnology",
	"renewable energy",
}

// Load reads the environment once. Call it after godotenv.Load; the
// result is treated as immutable for the process lifetime.
func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		NewsAPIKey:      getEnv("NEWS_API_KEY", ""),
		FinnhubAPIKey:   getEnv("FINNHUB_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_MINUTES", 30)) * time.Minute,
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		RedisURL:        getEnv("REDIS_URL", ""),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		TrendingTopics:  defaultTrendingTopics,
	}

	if path := os.Getenv("TRENDING_TOPICS_FILE"); path != "" {
		topics, err := loadTopicsFile(path)
		if err != nil {
			slog.Warn("could not load trending topics file, using defaults", "path", path, "error", err)
		} else if len(topics) > 0 {
			cfg.TrendingTopics = topics
		}
	}

	return cfg
}

func loadTopicsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Topics []string `yaml:"topics"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	return parsed.Topics, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("invalid env value, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		slog.Warn("invalid env value, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}

	return value
}
