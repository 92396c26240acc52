package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const rateLimitKeyPrefix = "ainews:ratelimit:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// IncrRateWindow increments the caller's counter for the current
// one-minute window and returns the new count. The window key expires
// on its own, so stale counters never accumulate.
func IncrRateWindow(key string) (int64, error) {
	windowKey := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, key, time.Now().Unix()/60)

	count, err := Redis.Incr(Ctx, windowKey).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := Redis.Expire(Ctx, windowKey, 2*time.Minute).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}
