// Package account models a single account that validates deposits and
// withdrawals against its limits and keeps an ordered transaction history.
package account

import (
	"errors"
	"time"

	"go-bank-account/common"
	"go-bank-account/logger"
	"go-bank-account/metrics"
	"go-bank-account/model"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Account holds a balance and the transactions recorded against it.
// It is not safe for concurrent use; callers serialize access.
type Account struct {
	balance      decimal.Decimal
	transactions []model.Transaction

	limits       Limits
	now          func() time.Time
	metrics      metrics.Collector
	log          *logrus.Entry
	trackBalance bool
}

func New(initialBalance decimal.Decimal, opts ...Option) *Account {
	a := &Account{
		balance: initialBalance,
		limits:  DefaultLimits(),
		now:     time.Now,
		metrics: metrics.NoOpCollector{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Log.WithField("component", "account")
	}
	return a
}

// Deposit records a deposit dated today.
func (a *Account) Deposit(amount decimal.Decimal) error {
	log := a.log.WithFields(logrus.Fields{
		"operation": metrics.OperationDeposit,
		"amount":    amount.String(),
	})

	if err := validatePositive(amount); err != nil {
		return a.reject(log, metrics.OperationDeposit, err)
	}
	if err := a.validateDepositCount(); err != nil {
		return a.reject(log, metrics.OperationDeposit, err)
	}

	a.transactions = append(a.transactions, model.NewTransaction(a.today(), amount, true))
	if a.trackBalance {
		a.balance = a.balance.Add(amount)
	}
	a.accept(log, metrics.OperationDeposit)
	return nil
}

// Withdraw records a withdrawal dated today.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	log := a.log.WithFields(logrus.Fields{
		"operation": metrics.OperationWithdraw,
		"amount":    amount.String(),
	})

	if err := validatePositive(amount); err != nil {
		return a.reject(log, metrics.OperationWithdraw, err)
	}
	if err := a.validateBalance(amount); err != nil {
		return a.reject(log, metrics.OperationWithdraw, err)
	}
	if err := a.validateDailyLimit(amount); err != nil {
		return a.reject(log, metrics.OperationWithdraw, err)
	}

	a.transactions = append(a.transactions, model.NewTransaction(a.today(), amount, false))
	if a.trackBalance {
		a.balance = a.balance.Sub(amount)
	}
	a.accept(log, metrics.OperationWithdraw)
	return nil
}

// RecordTransaction appends a transaction with an explicit date and type.
// No rule is checked and the balance is left alone; it exists for imports
// and backdated entries.
func (a *Account) RecordTransaction(date civil.Date, amount decimal.Decimal, isDeposit bool) {
	t := model.NewTransaction(date, amount, isDeposit)
	a.transactions = append(a.transactions, t)

	a.log.WithFields(logrus.Fields{
		"operation": metrics.OperationRecord,
		"date":      date.String(),
		"amount":    amount.String(),
		"kind":      t.Kind(),
	}).Debug("Transaction recorded without validation")
	a.metrics.RecordOperation(metrics.OperationRecord, metrics.OutcomeOK)
}

// WithdrawnAmountOn sums the withdrawals dated exactly date.
func (a *Account) WithdrawnAmountOn(date civil.Date) decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.transactions {
		if t.WasWithdrawnOn(date) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// RemainingDailyWithdrawal is what can still be withdrawn on date. It is
// negative when recorded withdrawals already exceed the daily limit.
func (a *Account) RemainingDailyWithdrawal(date civil.Date) decimal.Decimal {
	return a.limits.DailyWithdrawalLimit.Sub(a.WithdrawnAmountOn(date))
}

// DepositCount counts deposits of every date.
func (a *Account) DepositCount() int {
	count := 0
	for _, t := range a.transactions {
		if t.IsDeposit {
			count++
		}
	}
	return count
}

// Transactions returns a copy of the history in insertion order.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// SetBalance overwrites the balance without any check.
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.balance = balance
	a.metrics.RecordBalance(balance.InexactFloat64())
}

func (a *Account) Limits() Limits {
	return a.limits
}

func (a *Account) today() civil.Date {
	return civil.DateOf(a.now())
}

func validatePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return negativeAmountError(amount)
	}
	return nil
}

func (a *Account) validateDepositCount() error {
	if a.DepositCount() >= a.limits.MaxDeposits {
		return tooManyDepositsError(a.limits.MaxDeposits)
	}
	return nil
}

func (a *Account) validateBalance(amount decimal.Decimal) error {
	if a.balance.Sub(amount).IsNegative() {
		return insufficientBalanceError(a.balance, amount)
	}
	return nil
}

func (a *Account) validateDailyLimit(amount decimal.Decimal) error {
	remaining := a.RemainingDailyWithdrawal(a.today())
	if amount.GreaterThan(remaining) {
		return dailyWithdrawalLimitError(a.limits.DailyWithdrawalLimit, remaining)
	}
	return nil
}

func (a *Account) accept(log *logrus.Entry, op metrics.Operation) {
	log.WithField("balance", a.balance.String()).Info("Transaction accepted")
	a.metrics.RecordOperation(op, metrics.OutcomeOK)
	a.metrics.RecordBalance(a.balance.InexactFloat64())
}

func (a *Account) reject(log *logrus.Entry, op metrics.Operation, err error) error {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		appErr.Log(log)
	}
	a.metrics.RecordOperation(op, Classify(err))
	return err
}
