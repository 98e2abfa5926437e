package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records engine metrics on the default registry. Construct
// it once at startup; promauto panics on duplicate registration.
type PrometheusMetrics struct {
	historyRequests    *prometheus.CounterVec
	historyDuration    prometheus.Histogram
	historyPoints      prometheus.Histogram
	rateFallbacksTotal prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		historyRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "networth_history_requests_total",
				Help: "Total number of net worth history computations",
			},
			[]string{"status"},
		),
		historyDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "networth_history_duration_milliseconds",
				Help:    "Net worth history computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		historyPoints: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "networth_history_data_points",
				Help:    "Number of data points returned per history computation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		rateFallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "networth_rate_fallbacks_total",
				Help: "Total number of responses that used an approximated exchange rate",
			},
		),
	}
}

func (m *PrometheusMetrics) ObserveHistoryRequest(status string, duration time.Duration, points int) {
	m.historyRequests.WithLabelValues(status).Inc()
	m.historyDuration.Observe(float64(duration.Milliseconds()))
	if points > 0 {
		m.historyPoints.Observe(float64(points))
	}
}

func (m *PrometheusMetrics) RecordRateFallback() {
	m.rateFallbacksTotal.Inc()
}

// noopMetrics is used in tests, where registering collectors on the global
// registry would collide across test cases.
type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards all observations.
func NewNoopMetrics() MetricsRecorderInterface { return noopMetrics{} }

func (noopMetrics) ObserveHistoryRequest(string, time.Duration, int) {}
func (noopMetrics) RecordRateFallback()                              {}
