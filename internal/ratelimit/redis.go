package ratelimit

import (
	"log/slog"

	"ainews/db"
)

// RedisLimiter enforces a shared per-minute window across instances.
// It fails open when Redis is unreachable.
type RedisLimiter struct {
	perMinute int
}

func NewRedisLimiter(perMinute int) *RedisLimiter {
	return &RedisLimiter{perMinute: perMinute}
}

func (l *RedisLimiter) Allow(key string) bool {
	count, err := db.IncrRateWindow(key)
	if err != nil {
		slog.Warn("rate limit check failed, allowing request", "key", key, "error", err)
		return true
	}
	return count <= int64(l.perMinute)
}
