package provider

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "transcriber"

// PrometheusMetrics implements ProviderMetrics on top of Prometheus collectors
type PrometheusMetrics struct {
	requests      *prometheus.CounterVec
	failures      *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	audioDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Transcription requests sent to a provider, by outcome.",
		}, []string{"provider", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Failed transcription requests, by provider error code.",
		}, []string{"provider", "code"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_uploads_total",
			Help:      "Uploads refused before any provider call.",
		}, []string{"reason"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting for the provider.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"provider"}),
		audioDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "audio_duration_seconds",
			Help:      "Length of successfully transcribed audio.",
			Buckets:   []float64{5, 15, 30, 60, 300, 900, 1800, 3600},
		}, []string{"provider"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.failures, m.rejected, m.latency, m.audioDuration)
	}
	return m
}

// RecordSuccess records a successful transcription
func (m *PrometheusMetrics) RecordSuccess(provider string, latencyMs int64, audioLengthSec float64) {
	m.requests.WithLabelValues(provider, "success").Inc()
	m.latency.WithLabelValues(provider).Observe(float64(latencyMs) / 1000)
	if audioLengthSec > 0 {
		m.audioDuration.WithLabelValues(provider).Observe(audioLengthSec)
	}
}

// RecordFailure records a failed transcription
func (m *PrometheusMetrics) RecordFailure(provider string, errorType string) {
	m.requests.WithLabelValues(provider, "failure").Inc()
	m.failures.WithLabelValues(provider, errorType).Inc()
}

// RecordRejected records an upload refused before any provider call
func (m *PrometheusMetrics) RecordRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}
