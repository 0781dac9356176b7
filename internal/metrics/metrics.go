package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(NewRegistry, New),
)

// Backend call outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
)

// Metrics holds the website's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BackendRequests     *prometheus.CounterVec
	BackendFallbacks    *prometheus.CounterVec
	Signups             *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates and registers the website collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seo_website",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "seo_website",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seo_website",
			Name:      "backend_requests_total",
			Help:      "Calls to the SEO backend by operation and outcome.",
		}, []string{"operation", "outcome"}),
		BackendFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seo_website",
			Name:      "backend_fallbacks_total",
			Help:      "Backend failures hidden from visitors behind demo data or a soft message.",
		}, []string{"operation"}),
		Signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seo_website",
			Name:      "signups_total",
			Help:      "Signup form submissions by plan and outcome.",
		}, []string{"plan", "outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequests,
		m.BackendFallbacks,
		m.Signups,
	)
	return m
}

// ObserveBackend records the outcome of one backend call.
func (m *Metrics) ObserveBackend(operation, outcome string) {
	m.BackendRequests.WithLabelValues(operation, outcome).Inc()
}

// ObserveFallback records a masked backend failure.
func (m *Metrics) ObserveFallback(operation string) {
	m.BackendFallbacks.WithLabelValues(operation).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
