package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/SeakMengs/NorthwindSite/internal/metrics"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

// Keyed by client ip and route so one noisy form does not lock a visitor out of the others.
func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if m.rateLimiter == nil || !m.app.Config.RateLimiter.Enabled {
		ctx.Next()
		return
	}

	route := ctx.FullPath()
	if route == "" {
		route = ctx.Request.URL.Path
	}

	allowed, retryAfter, err := m.rateLimiter.Allow(ctx.Request.Context(), ctx.ClientIP()+":"+route)
	if err != nil {
		// Failing open keeps the forms usable when the limiter backend is down.
		m.app.Logger.Warnw("Rate limiter error", "route", route, "error", err)
		ctx.Next()
		return
	}

	if !allowed {
		metrics.RateLimitedTotal.WithLabelValues(route).Inc()
		ctx.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests, please try again later", []util.ApiError{{Field: "rateLimit", Message: "Too many requests"}}, nil)
		return
	}

	ctx.Next()
}
