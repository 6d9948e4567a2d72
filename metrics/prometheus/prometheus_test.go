package prometheus

import (
	"testing"

	"go-bank-account/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordOperation(t *testing.T) {
	c := NewCollector("wallet")
	require.NoError(t, c.Register(prometheus.NewRegistry()))

	c.RecordOperation(metrics.OperationDeposit, metrics.OutcomeOK)
	c.RecordOperation(metrics.OperationDeposit, metrics.OutcomeOK)
	c.RecordOperation(metrics.OperationWithdraw, "insufficient_balance")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("deposit", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("withdraw", "insufficient_balance")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.operations.WithLabelValues("withdraw", "ok")))
}

func TestCollector_RecordBalance(t *testing.T) {
	c := NewCollector("wallet")
	c.RecordBalance(250.5)
	assert.Equal(t, 250.5, testutil.ToFloat64(c.balance))
}

func TestCollector_RegisterTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, NewCollector("wallet").Register(registry))
	assert.Error(t, NewCollector("wallet").Register(registry))
}
