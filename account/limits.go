package account

import (
	"go-bank-account/config"

	"github.com/shopspring/decimal"
)

// Limits are the caps enforced by Deposit and Withdraw.
type Limits struct {
	// MaxDeposits counts deposits across every date, not per day.
	MaxDeposits          int
	DailyWithdrawalLimit decimal.Decimal
}

func DefaultLimits() Limits {
	return Limits{
		MaxDeposits:          3,
		DailyWithdrawalLimit: decimal.NewFromInt(1000),
	}
}

func LimitsFromConfig(cfg config.Config) Limits {
	return Limits{
		MaxDeposits:          cfg.Limits.MaxDeposits,
		DailyWithdrawalLimit: decimal.NewFromFloat(cfg.Limits.DailyWithdrawalLimit),
	}
}
