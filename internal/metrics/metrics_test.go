package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRPC(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRPC("/commonspace.v1.ExpenseService/GetBalances", "ok", 3*time.Millisecond)
	m.ObserveRPC("/commonspace.v1.ExpenseService/GetBalances", "ok", 5*time.Millisecond)
	m.ObserveRPC("/commonspace.v1.ExpenseService/GetBalances", "unauthenticated", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/commonspace.v1.ExpenseService/GetBalances", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/commonspace.v1.ExpenseService/GetBalances", "unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}

func TestObserveBalances(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBalances(time.Millisecond, 2)

	expected := `
# HELP commonspace_suggested_debts Number of suggested payments returned per balance computation.
# TYPE commonspace_suggested_debts histogram
commonspace_suggested_debts_bucket{le="0"} 0
commonspace_suggested_debts_bucket{le="1"} 0
commonspace_suggested_debts_bucket{le="2"} 1
commonspace_suggested_debts_bucket{le="3"} 1
commonspace_suggested_debts_bucket{le="5"} 1
commonspace_suggested_debts_bucket{le="8"} 1
commonspace_suggested_debts_bucket{le="13"} 1
commonspace_suggested_debts_bucket{le="21"} 1
commonspace_suggested_debts_bucket{le="+Inf"} 1
commonspace_suggested_debts_sum 2
commonspace_suggested_debts_count 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "commonspace_suggested_debts"))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("/x", "ok", time.Second)
	m.ObserveBalances(time.Second, 1)
}
