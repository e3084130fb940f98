package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
	// Transport failed but the fallback reported a local message id.
	OutcomeFallback = "fallback"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northwind_form_submissions_total",
			Help: "Total number of form submissions by form and outcome",
		},
		[]string{"form", "outcome"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northwind_notifications_total",
			Help: "Total number of notification emails by kind, template source and outcome",
		},
		[]string{"kind", "template", "outcome"},
	)

	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "northwind_notification_duration_seconds",
			Help:    "Time spent rendering and sending one notification",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northwind_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
