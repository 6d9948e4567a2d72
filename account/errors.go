package account

import (
	"errors"
	"fmt"

	"go-bank-account/common"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount       = errors.New("amount must be a positive value")
	ErrTooManyDeposits      = errors.New("maximum number of deposits reached")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrDailyWithdrawalLimit = errors.New("daily withdrawal limit exceeded")
)

// Error codes carried by the *common.AppError returned for each rule.
const (
	CodeNegativeAmount       = "negative_amount"
	CodeTooManyDeposits      = "too_many_deposits"
	CodeInsufficientBalance  = "insufficient_balance"
	CodeDailyWithdrawalLimit = "daily_withdrawal_limit"
)

func negativeAmountError(amount decimal.Decimal) error {
	msg := fmt.Sprintf("%s: the amount must be a positive value", amount.String())
	return common.NewAppError(CodeNegativeAmount, msg, ErrNegativeAmount)
}

func tooManyDepositsError(max int) error {
	msg := fmt.Sprintf("already reached the maximum of %d deposits", max)
	return common.NewAppError(CodeTooManyDeposits, msg, ErrTooManyDeposits)
}

func insufficientBalanceError(balance, amount decimal.Decimal) error {
	msg := fmt.Sprintf("cannot withdraw %s, the balance is %s", amount.String(), balance.String())
	return common.NewAppError(CodeInsufficientBalance, msg, ErrInsufficientBalance)
}

func dailyWithdrawalLimitError(limit, remaining decimal.Decimal) error {
	msg := fmt.Sprintf("cannot withdraw more than %s per day, remaining today: %s", limit.String(), remaining.String())
	return common.NewAppError(CodeDailyWithdrawalLimit, msg, ErrDailyWithdrawalLimit)
}

// IsRuleViolation reports whether err is one of the account rule errors.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrTooManyDeposits) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrDailyWithdrawalLimit)
}

// Classify returns the error code of err for metric labels.
func Classify(err error) string {
	if err == nil {
		return "none"
	}

	switch {
	case errors.Is(err, ErrNegativeAmount):
		return CodeNegativeAmount
	case errors.Is(err, ErrTooManyDeposits):
		return CodeTooManyDeposits
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrDailyWithdrawalLimit):
		return CodeDailyWithdrawalLimit
	default:
		return "unknown"
	}
}
