package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Summary generation Prometheus metrics.
var (
	SummaryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "movieapi",
			Name:      "summary_requests_total",
			Help:      "Total number of summary completion requests",
		},
		[]string{"model", "status"},
	)

	SummaryRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "movieapi",
			Name:      "summary_request_duration_seconds",
			Help:      "Summary completion request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"model"},
	)

	SummaryTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "movieapi",
			Name:      "summary_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"model", "type"},
	)
)

// RegisterSummaryMetrics registers the summary metrics with reg.
// Registering twice with the same registerer is a no-op.
func RegisterSummaryMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{SummaryRequestsTotal, SummaryRequestDuration, SummaryTokensTotal} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
