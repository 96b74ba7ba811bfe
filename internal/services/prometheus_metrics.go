package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	cardsTotal           *prometheus.CounterVec
	transactionsRecorded *prometheus.CounterVec
	pointsCredited       prometheus.Counter
	idempotentReplays    prometheus.Counter
	recommendationsTotal *prometheus.CounterVec
	reportsTotal         *prometheus.CounterVec
	reportDuration       *prometheus.HistogramVec
	upstreamFailures     *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	categorySuggestions  *prometheus.CounterVec
	expiringPoints       prometheus.Gauge
	transactionDuration  prometheus.Histogram
}

// NewPrometheusMetrics registers the rewards metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		cardsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_card_operations_total",
				Help: "Total number of card create, update and delete operations",
			},
			[]string{"operation"},
		),
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_transactions_recorded_total",
				Help: "Total number of transactions recorded by category",
			},
			[]string{"category"},
		),
		pointsCredited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_points_credited_total",
				Help: "Total points credited to cards by recorded transactions",
			},
		),
		idempotentReplays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_idempotent_replays_total",
				Help: "Total number of transaction requests answered from the idempotency cache",
			},
		),
		recommendationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_recommendations_total",
				Help: "Total number of card recommendations by category",
			},
			[]string{"category"},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_reports_total",
				Help: "Total number of insight reports generated",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_report_duration_milliseconds",
				Help:    "Insight report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		upstreamFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_upstream_failures_total",
				Help: "Total number of failed card or transaction store reads",
			},
			[]string{"source"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rewards_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		categorySuggestions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_category_suggestions_total",
				Help: "Total number of inferred transaction categories by method",
			},
			[]string{"method"},
		),
		expiringPoints: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_expiring_points",
				Help: "Points inside the expiry window in the last computed alert set",
			},
		),
		transactionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rewards_transaction_duration_milliseconds",
				Help:    "Transaction recording duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "card_created":
		m.cardsTotal.WithLabelValues("create").Inc()
	case "card_updated":
		m.cardsTotal.WithLabelValues("update").Inc()
	case "card_deleted":
		m.cardsTotal.WithLabelValues("delete").Inc()
	case "transaction_recorded":
		if category := tags["category"]; category != "" {
			m.transactionsRecorded.WithLabelValues(category).Inc()
		}
	case "transaction_replayed":
		m.idempotentReplays.Inc()
	case "recommendation_generated":
		m.recommendationsTotal.WithLabelValues(tags["category"]).Inc()
	case "report_generated":
		if report := tags["report"]; report != "" {
			m.reportsTotal.WithLabelValues(report, tags["status"]).Inc()
		}
	case "upstream_failure":
		m.upstreamFailures.WithLabelValues(tags["source"]).Inc()
	case "category_inferred":
		if method := tags["method"]; method != "" {
			m.categorySuggestions.WithLabelValues(method).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction_recorded":
		m.transactionDuration.Observe(float64(duration.Milliseconds()))
	default:
		m.reportDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "points_credited":
		m.pointsCredited.Add(value)
	case "expiring_points":
		m.expiringPoints.Set(value)
	case "circuit_breaker_state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
