// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Summarization metrics track pipeline attempts and latency.
var (
	// SummarizeAttemptsTotal counts finished summarization attempts by outcome
	// ("success" or a failure kind identifier).
	SummarizeAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarize_attempts_total",
			Help: "Total number of summarization attempts by outcome",
		},
		[]string{"outcome"},
	)

	// SummarizeDuration measures the end-to-end duration of an attempt,
	// including the provider round trip.
	SummarizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarize_duration_seconds",
			Help:    "Time taken by a summarization attempt",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// SessionTransitionsTotal counts UI state machine transitions.
	SessionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_transitions_total",
			Help: "Total number of session state transitions",
		},
		[]string{"from", "to", "event"},
	)
)

// PipelineRecorder records summarization metrics.
// It satisfies the recorder interface expected by the summarization service.
type PipelineRecorder struct{}

// RecordOutcome counts a finished attempt by outcome.
func (PipelineRecorder) RecordOutcome(outcome string) {
	SummarizeAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordDuration records the end-to-end duration of an attempt.
func (PipelineRecorder) RecordDuration(duration time.Duration) {
	SummarizeDuration.Observe(duration.Seconds())
}

// SessionRecorder records state machine transitions.
// It satisfies the recorder interface expected by the session controller.
type SessionRecorder struct{}

// RecordTransition counts a state transition.
func (SessionRecorder) RecordTransition(from, to, event string) {
	SessionTransitionsTotal.WithLabelValues(from, to, event).Inc()
}
