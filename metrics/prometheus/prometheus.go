package prometheus

import (
	"go-bank-account/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements metrics.Collector for Prometheus.
type Collector struct {
	operations *prometheus.CounterVec
	balance    prometheus.Gauge
}

var _ metrics.Collector = (*Collector)(nil)

// NewCollector creates the account metrics under namespace. Call Register to
// expose them.
func NewCollector(namespace string) *Collector {
	return &Collector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_operations_total",
				Help:      "Total number of account operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		balance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_balance",
				Help:      "Current account balance",
			},
		),
	}
}

// Register registers all metrics with the given registerer.
func (c *Collector) Register(registry prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{c.operations, c.balance} {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) RecordOperation(op metrics.Operation, outcome string) {
	c.operations.WithLabelValues(string(op), outcome).Inc()
}

func (c *Collector) RecordBalance(balance float64) {
	c.balance.Set(balance)
}
