// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_intents_total",
			Help: "Total number of intent events handled, by outcome (fulfilled, failed, elicit)",
		},
		[]string{"intent", "outcome"},
	)

	IntentErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_intent_errors_total",
			Help: "Total number of intent turns closed because of an error",
		},
		[]string{"intent", "error_code"},
	)

	IntentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lex_intent_duration_seconds",
			Help:    "Duration of intent handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"intent"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to external services (rekognition, geocoder, forecast, s3, lex)",
		},
		[]string{"service", "status"},
	)
)

// ObserveUpstream counts one upstream call; status is "ok" or "error".
func ObserveUpstream(service string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamRequests.WithLabelValues(service, status).Inc()
}
