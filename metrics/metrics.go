package metrics

// Operation names an account operation for metric labels.
type Operation string

const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
	OperationRecord   Operation = "record"
)

// OutcomeOK labels an accepted operation. Rejections are labelled with the
// error code instead.
const OutcomeOK = "ok"

// Collector receives the outcome of every account operation.
// Implementations can export metrics to various backends.
type Collector interface {
	RecordOperation(op Operation, outcome string)
	RecordBalance(balance float64)
}

// NoOpCollector is the default collector when metrics are not needed.
type NoOpCollector struct{}

// RecordOperation does nothing.
func (NoOpCollector) RecordOperation(op Operation, outcome string) {}

// RecordBalance does nothing.
func (NoOpCollector) RecordBalance(balance float64) {}
