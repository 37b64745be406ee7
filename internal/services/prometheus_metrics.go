package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pixbank/internal/money"
)

type PrometheusMetrics struct {
	transferAttempts *prometheus.CounterVec
	transferOutcomes *prometheus.CounterVec
	transferDuration prometheus.Histogram
	transferAmount   prometheus.Histogram
	historyQueries   prometheus.Counter
	historyMatched   prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transferAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_attempts_total",
				Help: "Total number of transfer attempts started",
			},
			[]string{"channel"},
		),
		transferOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_outcomes_total",
				Help: "Transfer attempts by terminal outcome",
			},
			[]string{"channel", "outcome"},
		),
		transferDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "End-to-end transfer attempt duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount_brl",
				Help:    "Confirmed transfer amounts in BRL",
				Buckets: prometheus.ExponentialBuckets(1, 10, 7),
			},
		),
		historyQueries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "history_queries_total",
				Help: "Total number of history filter evaluations",
			},
		),
		historyMatched: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "history_query_matched_records",
				Help:    "Records surviving the history filter per query",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransferAttempt(channel string) {
	m.transferAttempts.WithLabelValues(channel).Inc()
}

func (m *PrometheusMetrics) RecordTransferOutcome(channel, outcome string, duration time.Duration) {
	m.transferOutcomes.WithLabelValues(channel, outcome).Inc()
	m.transferDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordTransferAmount(amount money.Amount) {
	f, _ := amount.Decimal().Float64()
	m.transferAmount.Observe(f)
}

func (m *PrometheusMetrics) RecordHistoryQuery(matched int) {
	m.historyQueries.Inc()
	m.historyMatched.Observe(float64(matched))
}
