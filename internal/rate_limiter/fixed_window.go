package ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"go.uber.org/zap"
)

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per key in process memory.
type FixedWindowRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*window
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
	logger    *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		now:     time.Now,
		logger:  logger,
	}
}

func (rl *FixedWindowRateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.clients[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: windowStart(now, rl.window).Add(rl.window)}
		rl.clients[key] = w
	}

	if w.count >= rl.limit {
		return false, w.resetAt.Sub(now), nil
	}

	w.count++
	return true, 0, nil
}

// Drops expired windows at most once per window length.
func (rl *FixedWindowRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}

	for key, w := range rl.clients {
		if !now.Before(w.resetAt) {
			delete(rl.clients, key)
		}
	}
	rl.lastSweep = now
}
