package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM generation attempts",
		},
		[]string{"provider", "outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of LLM generation attempts in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20},
		},
		[]string{"provider"},
	)

	TriageClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_classifications_total",
			Help: "Total number of triage classifications by result and source",
		},
		[]string{"specialty", "priority", "source"},
	)

	DispatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_outcomes_total",
			Help: "Total number of dispatch attempts by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of staff notifications by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	ConversationTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_turns_total",
			Help: "Total number of conversation turns by resulting state",
		},
		[]string{"channel", "state"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "intake_sessions_active",
			Help: "Number of conversation sessions held by the in-memory store",
		},
	)
)

// Outcome labels shared by the counters above.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
