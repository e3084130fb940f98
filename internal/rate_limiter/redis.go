package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisFixedWindowLimiter keeps one counter per key and window in redis.
// If redis cannot be reached the fallback limiter answers instead.
type RedisFixedWindowLimiter struct {
	client   *redis.Client
	limit    int
	window   time.Duration
	fallback Limiter
	now      func() time.Time
	logger   *zap.SugaredLogger
}

func NewRedisFixedWindowLimiter(client *redis.Client, cfg config.RateLimiterConfig, logger *zap.SugaredLogger, fallback Limiter) *RedisFixedWindowLimiter {
	return &RedisFixedWindowLimiter{
		client:   client,
		limit:    cfg.RequestsPerTimeFrame,
		window:   cfg.TimeFrame,
		fallback: fallback,
		now:      time.Now,
		logger:   logger,
	}
}

func (rl *RedisFixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := rl.now()
	start := windowStart(now, rl.window)
	resetAt := start.Add(rl.window)
	redisKey := fmt.Sprintf("%s:ratelimit:%s:%d", util.GetAppSlug(), key, start.Unix())

	var incr *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, resetAt.Sub(now))
		return nil
	})
	if err != nil {
		if rl.fallback == nil {
			return false, 0, err
		}
		rl.logger.Warnf("Redis rate limiter unavailable, using fallback. Error: %v", err)
		return rl.fallback.Allow(ctx, key)
	}

	if incr.Val() > int64(rl.limit) {
		return false, resetAt.Sub(now), nil
	}

	return true, 0, nil
}
