// Package metrics provides Prometheus metrics for the script generator and the lead forwarder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// AttemptsTotal counts individual calls to the generation service.
	AttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repify",
			Name:      "script_attempts_total",
			Help:      "Total number of calls made to the generation service",
		},
		[]string{"provider", "outcome"},
	)

	// GenerationsTotal counts finished generations, one per topic.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repify",
			Name:      "script_generations_total",
			Help:      "Total number of script generations by final outcome",
		},
		[]string{"provider", "outcome"},
	)

	// GenerationDuration measures a generation including backoff waits.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "repify",
			Name:      "script_generation_duration_seconds",
			Help:      "Duration of script generations in seconds, backoff included",
			Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60, 120},
		},
		[]string{"provider"},
	)

	// LeadsTotal counts contact form submissions by delivery status.
	LeadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repify",
			Name:      "leads_total",
			Help:      "Total number of contact form submissions",
		},
		[]string{"status"},
	)
)

// RecordAttempt records one call to the generation service.
func RecordAttempt(provider, outcome string) {
	AttemptsTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordGeneration records a finished generation.
func RecordGeneration(provider, outcome string, duration float64) {
	GenerationsTotal.WithLabelValues(provider, outcome).Inc()
	GenerationDuration.WithLabelValues(provider).Observe(duration)
}

// RecordLead records a contact form submission.
func RecordLead(status string) {
	LeadsTotal.WithLabelValues(status).Inc()
}
