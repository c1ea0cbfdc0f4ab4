package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrocalc"

// Metrics holds the Prometheus collectors of the engine and its adapters.
type Metrics struct {
	Computations    *prometheus.CounterVec
	Selections      *prometheus.CounterVec
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on a private registry,
// so several engines (and tests) never collide on the global one.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computations_total",
				Help:      "Total number of computations by module, strategy and outcome",
			},
			[]string{"module", "strategy", "outcome"},
		),
		Selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selections_total",
				Help:      "Total number of module selections (empty module means home)",
			},
			[]string{"module"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.Computations, m.Selections, m.Requests, m.RequestDuration)
	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}
