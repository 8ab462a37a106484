package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of order.created events applied to open order forms",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of order.created events that could not be decoded",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	staleSessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_consumer",
			Name:      "stale_sessions_total",
			Help:      "Total number of open order forms flagged as having stale stock",
		},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "kafka_publisher",
			Name:      "events_published_total",
			Help:      "Total number of order.created publish attempts",
		},
		[]string{"status"},
	)
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_backoffice",
			Subsystem: "http",
			Name:      "submissions_total",
			Help:      "Total number of order submissions by outcome",
		},
		[]string{"outcome"},
	)

	submissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shop_backoffice",
			Subsystem: "http",
			Name:      "submission_duration_seconds",
			Help:      "Histogram of order submission durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	submissionsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shop_backoffice",
			Subsystem: "http",
			Name:      "submissions_in_progress",
			Help:      "Number of order submissions waiting for the backend",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		staleSessions,
		eventsPublished,

		submissionsTotal,
		submissionDuration,
		submissionsInProgress,
	)
}
