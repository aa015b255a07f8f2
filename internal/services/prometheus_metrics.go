package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	importsTotal          *prometheus.CounterVec
	importBatchFailures   prometheus.Counter
	importDuration        prometheus.Histogram
	categorizationsTotal  *prometheus.CounterVec
	mlRequestsTotal       *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	transactionsTotal     *prometheus.CounterVec
	anomaliesFlaggedTotal prometheus.Counter
	sampleDataGenerated   prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_imports_total",
				Help: "Total number of statement imports by outcome",
			},
			[]string{"status"},
		),
		importBatchFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_import_batch_failures_total",
				Help: "Total number of persistence batches that failed during import",
			},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_import_duration_milliseconds",
				Help:    "Statement import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categorizationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorizations_total",
				Help: "Total number of categorization decisions by source",
			},
			[]string{"source"},
		),
		mlRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ml_requests_total",
				Help: "Total number of analytics requests by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_total",
				Help: "Total number of transaction write operations",
			},
			[]string{"operation"},
		),
		anomaliesFlaggedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "anomalies_flagged_total",
				Help: "Total number of transactions flagged as anomalous",
			},
		),
		sampleDataGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sample_data_generated_total",
				Help: "Total number of generated sample transactions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "import.completed":
		status := tags["status"]
		if status == "" {
			status = "success"
		}
		m.importsTotal.WithLabelValues(status).Inc()
	case "import.batch_failed":
		m.importBatchFailures.Inc()
	case "categorization.resolved":
		if source := tags["source"]; source != "" {
			m.categorizationsTotal.WithLabelValues(source).Inc()
		}
	case "ml.request":
		m.mlRequestsTotal.WithLabelValues(tags["operation"], tags["outcome"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "transaction.created", "transaction.updated", "transaction.deleted":
		m.transactionsTotal.WithLabelValues(tags["operation"]).Inc()
	case "anomaly.flagged":
		m.anomaliesFlaggedTotal.Inc()
	case "sample_data.generated":
		m.sampleDataGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
