package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("NEWS_API_KEY", "")
	t.Setenv("CACHE_TTL_MINUTES", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("TRENDING_TOPICS_FILE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.NewsAPIKey)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, len(defaultTrendingTopics), len(cfg.TrendingTopics))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("NEWS_API_KEY", "abc123")
	t.Setenv("CACHE_TTL_MINUTES", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TRENDING_TOPICS_FILE", "")

	cfg := Load()

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, "abc123", cfg.NewsAPIKey)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadInvalidTTLKeepsDefault(t *testing.T) {
	t.Setenv("CACHE_TTL_MINUTES", "soon")
	t.Setenv("TRENDING_TOPICS_FILE", "")

	cfg := Load()
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)

	t.Setenv("CACHE_TTL_MINUTES", "-10")

	cfg = Load()
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoadTopicsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := "topics:\n  - fusion power\n  - robotics\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRENDING_TOPICS_FILE", path)

	cfg := Load()

	assert.Equal(t, 2, len(cfg.TrendingTopics))
	assert.Equal(t, "fusion power", cfg.TrendingTopics[0])
	assert.Equal(t, "robotics", cfg.TrendingTopics[1])
}

func TestLoadMissingTopicsFileKeepsDefaults(t *testing.T) {
	t.Setenv("TRENDING_TOPICS_FILE", "/nonexistent/topics.yaml")

	cfg := Load()

	assert.Equal(t, len(defaultTrendingTopics), len(cfg.TrendingTopics))
}
