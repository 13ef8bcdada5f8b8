// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commonspace"

// Metrics groups the server's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	rpcRequests    *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	balanceLatency prometheus.Histogram
	suggestedDebts prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		rpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		balanceLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "balance_computation_seconds",
			Help:      "Time spent computing balances and suggested debts for a household.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		suggestedDebts: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "suggested_debts",
			Help:      "Number of suggested payments returned per balance computation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// ObserveRPC records one finished RPC. code is "ok" on success.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// ObserveBalances records one balance computation and the number of debts it produced.
func (m *Metrics) ObserveBalances(elapsed time.Duration, debts int) {
	if m == nil {
		return
	}
	m.balanceLatency.Observe(elapsed.Seconds())
	m.suggestedDebts.Observe(float64(debts))
}
