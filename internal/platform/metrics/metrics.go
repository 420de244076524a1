package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private Prometheus registry and the service's collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CalculationsTotal   *prometheus.CounterVec
	JournalErrorsTotal  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_server_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	m.CalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geo_calculations_total",
		Help: "Number of geodesic calculations by operation and outcome",
	}, []string{"operation", "outcome"})

	m.JournalErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geo_calculation_journal_errors_total",
		Help: "Number of calculation records that could not be journaled",
	})

	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration, m.CalculationsTotal, m.JournalErrorsTotal)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveCalculation(operation, outcome string) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveJournalError() {
	if m == nil {
		return
	}
	m.JournalErrorsTotal.Inc()
}
