package mymetrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess          = "success"
	OutcomeRemoteFailure    = "remote_failure"
	OutcomeTransportFailure = "transport_failure"
	OutcomeCancelled        = "cancelled"
)

type RemoteCallMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewRemoteCallMetrics(registerer prometheus.Registerer) *RemoteCallMetrics {
	factory := promauto.With(registerer)
	return &RemoteCallMetrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopclient",
			Subsystem: "storefront",
			Name:      "remote_calls_total",
			Help:      "Number of executed storefront calls per operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shopclient",
			Subsystem: "storefront",
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of executed storefront calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// Observe is safe on a nil receiver so metrics remain optional.
func (m *RemoteCallMetrics) Observe(operation string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
