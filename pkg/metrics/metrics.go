package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NudgesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nudges_sent_total",
			Help: "Total number of nudges persisted",
		},
	)

	// reason: self, validation, cooldown
	NudgesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nudges_rejected_total",
			Help: "Total number of nudges rejected before persisting",
		},
		[]string{"reason"},
	)

	// status: sent, no_token, failed
	PushDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nudge_push_deliveries_total",
			Help: "Best-effort push deliveries by outcome",
		},
		[]string{"status"},
	)

	Completions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_completions_total",
			Help: "Goal completions by classification",
		},
		[]string{"kind"},
	)

	Misses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streak_misses_total",
			Help: "Missed deadlines by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)
)

func RecordNudgeRejected(reason string) {
	NudgesRejected.WithLabelValues(reason).Inc()
}

func RecordPushDelivery(status string) {
	PushDeliveries.WithLabelValues(status).Inc()
}

func RecordCompletion(kind string) {
	Completions.WithLabelValues(kind).Inc()
}

func RecordMiss(outcome string) {
	Misses.WithLabelValues(outcome).Inc()
}

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
