package ratelimiter

import (
	"context"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter decides whether key may make another request in the current window.
// When it may not, retryAfter is the time left until the window resets.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// NewRateLimiter returns a redis backed limiter when REDIS_ADDR is set so
// that every API instance shares one budget, an in-memory one otherwise.
func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) Limiter {
	// For unit test
	if logger == nil {
		logger = util.NewNopLogger()
	}

	memory := NewFixedWindowLimiter(cfg, logger)
	if cfg.RedisAddr == "" {
		return memory
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return NewRedisFixedWindowLimiter(client, cfg, logger, memory)
}

// Start of the fixed window that contains now.
func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}
