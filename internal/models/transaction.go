package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is a single income or expense.
type Transaction struct {
	DefaultModel
	Kind        TransactionKind `json:"kind" example:"expense"`
	Category    string          `json:"category" example:"Food"` // Name of the category, matched against Category.Name
	Description string          `json:"description" example:"Weekly groceries"`
	Amount      decimal.Decimal `json:"amount" example:"42.17"`
	Fixed       bool            `json:"fixed" example:"false"` // Fixed costs like rent
	Date        time.Time       `json:"date" example:"2024-03-01T10:00:00Z"`
	Notes       string          `json:"notes,omitempty" example:"Paid with the shared card"`
}

func (Transaction) Self() string {
	return "Transaction"
}

func (Transaction) Collection() Collection {
	return Transactions
}

// Normalize trims whitespace, moves the date to UTC and validates
// the transaction.
//
// The date is not defaulted here since that needs a clock.
func (t *Transaction) Normalize() error {
	trim(&t.Category, &t.Description, &t.Notes)
	t.Date = t.Date.In(time.UTC)

	if t.Kind != KindIncome && t.Kind != KindExpense {
		return ErrTransactionKindInvalid
	}

	if t.Description == "" {
		return required("description")
	}

	return checkAmount(t.Amount)
}

// IsExpense reports if the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
