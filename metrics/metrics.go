// File: loanguard/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for AdvisorCalls.
const (
	OutcomeOK              = "ok"
	OutcomeValidation      = "validation"
	OutcomeInvalidResponse = "invalid_response"
)

var (
	AdvisorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loanguard_advisor_calls_total",
			Help: "Analysis operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AdvisorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loanguard_advisor_duration_seconds",
			Help:    "Duration of the remote generation call in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		},
		[]string{"operation"},
	)

	SchemaViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loanguard_response_schema_violations_total",
			Help: "Parsed responses that did not match the requested output schema",
		},
		[]string{"operation"},
	)

	ReportUploads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loanguard_report_uploads_total",
			Help: "CIBIL reports attached to a session",
		},
	)

	SessionStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loanguard_session_store_errors_total",
			Help: "Session store failures by operation",
		},
		[]string{"operation"},
	)
)
