package account

import (
	"time"

	"go-bank-account/metrics"

	"github.com/sirupsen/logrus"
)

type Option func(*Account)

func WithLimits(limits Limits) Option {
	return func(a *Account) {
		a.limits = limits
	}
}

// WithClock sets the source of "today" for Deposit and Withdraw.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		a.now = now
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(a *Account) {
		a.metrics = collector
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(a *Account) {
		a.log = entry
	}
}

// WithBalanceTracking makes a successful Deposit add to the balance and a
// successful Withdraw subtract from it. Without it the balance only changes
// through SetBalance.
func WithBalanceTracking() Option {
	return func(a *Account) {
		a.trackBalance = true
	}
}
