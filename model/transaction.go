package model

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction is a single movement of funds on a calendar date.
type Transaction struct {
	Date      civil.Date      `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	IsDeposit bool            `json:"is_deposit"`
}

func NewTransaction(date civil.Date, amount decimal.Decimal, isDeposit bool) Transaction {
	return Transaction{
		Date:      date,
		Amount:    amount,
		IsDeposit: isDeposit,
	}
}

func (t Transaction) IsWithdrawal() bool {
	return !t.IsDeposit
}

// OccurredOn reports whether the transaction is dated exactly d.
func (t Transaction) OccurredOn(d civil.Date) bool {
	return t.Date == d
}

func (t Transaction) WasDepositedOn(d civil.Date) bool {
	return t.IsDeposit && t.OccurredOn(d)
}

func (t Transaction) WasWithdrawnOn(d civil.Date) bool {
	return t.IsWithdrawal() && t.OccurredOn(d)
}

// SignedAmount is the effect on a balance: positive for deposits, negative
// for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDeposit {
		return t.Amount
	}
	return t.Amount.Neg()
}

func (t Transaction) Kind() string {
	if t.IsDeposit {
		return "deposit"
	}
	return "withdrawal"
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s", t.Date, t.Kind(), t.Amount.String())
}
