package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	intakeCreated = "created"
	intakeFailed  = "failed"
)

var (
	intakeMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "microcart",
			Subsystem: "order_intake",
			Name:      "messages_total",
			Help:      "Create-order messages handled, by result",
		},
		[]string{"result"},
	)

	intakeDLQWrites = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "microcart",
			Subsystem: "order_intake",
			Name:      "dlq_writes_total",
			Help:      "Messages copied to the dead letter topic",
		},
	)

	intakeCommitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "microcart",
			Subsystem: "order_intake",
			Name:      "commit_errors_total",
			Help:      "Failed offset commits",
		},
	)

	intakeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "microcart",
			Subsystem: "order_intake",
			Name:      "message_duration_seconds",
			Help:      "Time from fetch to commit of one message",
			Buckets:   prometheus.DefBuckets,
		},
	)

	intakeInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "microcart",
			Subsystem: "order_intake",
			Name:      "messages_in_progress",
			Help:      "Messages currently being handled",
		},
	)
)

// RegisterMetrics exposes the intake metrics. Called only when the Kafka intake is enabled.
func RegisterMetrics() {
	prometheus.MustRegister(
		intakeMessages,
		intakeDLQWrites,
		intakeCommitErrors,
		intakeDuration,
		intakeInProgress,
	)
}
