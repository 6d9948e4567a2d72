package account

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "none"},
		{"negative amount", negativeAmountError(decimal.NewFromInt(-1)), CodeNegativeAmount},
		{"too many deposits", tooManyDepositsError(3), CodeTooManyDeposits},
		{"insufficient balance", insufficientBalanceError(decimal.Zero, decimal.NewFromInt(1)), CodeInsufficientBalance},
		{"daily limit", dailyWithdrawalLimitError(decimal.NewFromInt(1000), decimal.Zero), CodeDailyWithdrawalLimit},
		{"wrapped sentinel", fmt.Errorf("import: %w", ErrTooManyDeposits), CodeTooManyDeposits},
		{"other error", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.expected {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsRuleViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"rule error", insufficientBalanceError(decimal.Zero, decimal.NewFromInt(1)), true},
		{"sentinel", ErrDailyWithdrawalLimit, true},
		{"nil error", nil, false},
		{"other error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRuleViolation(tt.err); got != tt.expected {
				t.Errorf("IsRuleViolation(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
