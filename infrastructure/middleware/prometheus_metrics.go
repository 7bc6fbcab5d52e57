// Package middleware provides cross-cutting infrastructure for the
// evaluation pipeline, currently a Prometheus-backed metrics collector.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// PrometheusMetrics implements ports.MetricsCollector on the global
// Prometheus registry. It tracks scenario outcomes per category and stage,
// plus request volume, latency, and token usage in the LLM layer.
type PrometheusMetrics struct {
	scenarioCounter  *prometheus.CounterVec
	scenarioLatency  *prometheus.HistogramVec
	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	tokenCounter     *prometheus.CounterVec
	operationCounter *prometheus.CounterVec
}

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers all evaluation metrics with the default
// registry and returns a collector. Calling it twice panics, as promauto
// registration does.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		scenarioCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eval_scenarios_total",
				Help: "Total evaluated scenarios by category, stage, and outcome.",
			},
			[]string{"category", "stage", "status"},
		),
		scenarioLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eval_scenario_duration_seconds",
				Help:    "End-to-end scenario duration including both generations and judgment.",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
			[]string{"category", "status"},
		),
		requestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total LLM requests by provider, model, and status.",
			},
			[]string{"provider", "model", "status"},
		),
		requestLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_latency_seconds",
				Help:    "LLM request latency by provider and model.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "model"},
		),
		tokenCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_tokens_total",
				Help: "Token usage by provider, model, and direction.",
			},
			[]string{"provider", "model", "token_type"},
		),
		operationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eval_operations_total",
				Help: "Catch-all counter for operations without a dedicated metric.",
			},
			[]string{"operation", "status"},
		),
	}
}

// RecordLatency records an operation duration. Scenario durations get their
// own histogram; everything else folds into the request latency metric.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	switch operation {
	case "scenario":
		pm.scenarioLatency.WithLabelValues(
			orUnknown(labels["category"]), orUnknown(labels["status"]),
		).Observe(duration.Seconds())
	default:
		pm.requestLatency.WithLabelValues(
			orUnknown(labels["provider"]), orUnknown(labels["model"]),
		).Observe(duration.Seconds())
	}
}

// RecordCounter increments the counter matching the metric name.
func (pm *PrometheusMetrics) RecordCounter(metric string, value float64, labels map[string]string) {
	switch metric {
	case "eval_scenarios_total":
		pm.scenarioCounter.WithLabelValues(
			orUnknown(labels["category"]), orUnknown(labels["stage"]), orUnknown(labels["status"]),
		).Add(value)
	case "llm_requests_total":
		pm.requestCounter.WithLabelValues(
			orUnknown(labels["provider"]), orUnknown(labels["model"]), orUnknown(labels["status"]),
		).Add(value)
	case "llm_tokens_total":
		pm.tokenCounter.WithLabelValues(
			orUnknown(labels["provider"]), orUnknown(labels["model"]), orUnknown(labels["token_type"]),
		).Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric, orUnknown(labels["status"])).Add(value)
	}
}

// RecordHistogram records a raw value; llm_latency_seconds goes to the
// request latency histogram, other values to the scenario histogram.
func (pm *PrometheusMetrics) RecordHistogram(metric string, value float64, labels map[string]string) {
	switch metric {
	case "llm_latency_seconds":
		pm.requestLatency.WithLabelValues(
			orUnknown(labels["provider"]), orUnknown(labels["model"]),
		).Observe(value)
	default:
		pm.scenarioLatency.WithLabelValues(
			orUnknown(labels["category"]), orUnknown(labels["status"]),
		).Observe(value)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
