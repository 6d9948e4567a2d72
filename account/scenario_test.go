package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ThreeDepositsThenCap(t *testing.T) {
	a := newTestAccount(0)

	require.NoError(t, a.Deposit(decimal.NewFromInt(100)))
	history := a.Transactions()
	require.Len(t, history, 1)
	assert.True(t, history[0].IsDeposit)
	assert.Equal(t, today, history[0].Date)

	require.NoError(t, a.Deposit(decimal.NewFromInt(100)))
	require.NoError(t, a.Deposit(decimal.NewFromInt(100)))

	assert.ErrorIs(t, a.Deposit(decimal.NewFromInt(50)), ErrTooManyDeposits)
	assert.Len(t, a.Transactions(), 3)
}

func TestScenario_WithdrawAboveBalance(t *testing.T) {
	a := newTestAccount(500)

	err := a.Withdraw(decimal.NewFromInt(1000))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "500")

	assert.NoError(t, a.Withdraw(decimal.NewFromInt(500)))
}

func TestScenario_DailyWithdrawalCap(t *testing.T) {
	a := newTestAccount(2000)

	require.NoError(t, a.Withdraw(decimal.NewFromInt(700)))
	assert.ErrorIs(t, a.Withdraw(decimal.NewFromInt(400)), ErrDailyWithdrawalLimit)
	assert.NoError(t, a.Withdraw(decimal.NewFromInt(300)))
	assertDecimal(t, "1000", a.WithdrawnAmountOn(today))
}
