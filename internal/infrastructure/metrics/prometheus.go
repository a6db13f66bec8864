// Package metrics registra los colectores Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parser_config_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parser_config_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	LLMRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parser_config_llm_requests_total",
		Help: "Total LLM requests",
	}, []string{"provider", "outcome"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parser_config_llm_request_duration_seconds",
		Help:    "LLM request duration",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"provider"})

	TableBrowseRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parser_config_table_browse_rows",
		Help:    "Rows returned per table browser page",
		Buckets: []float64{0, 1, 10, 25, 50, 100},
	}, []string{"table"})
)

// ObserveHTTP registra una petición. route es el patrón de Fiber, no la ruta cruda,
// para no disparar la cardinalidad con IDs.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

var _ ports.LLMMetrics = LLM{}

// LLM implementa ports.LLMMetrics sobre los colectores globales.
type LLM struct{}

// ObserveLLMCall cuenta la llamada por proveedor y resultado (ok, error, timeout).
func (LLM) ObserveLLMCall(provider, outcome string, elapsed time.Duration) {
	LLMRequestsTotal.WithLabelValues(provider, outcome).Inc()
	LLMRequestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
