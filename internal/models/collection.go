package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Collection is the name under which resources of one type are stored.
type Collection string

const (
	Transactions      Collection = "transactions"
	RecurringIncomes  Collection = "recurring_incomes"
	RecurringExpenses Collection = "recurring_expenses"
	Categories        Collection = "categories"
	Wishes            Collection = "wishes"
	ShoppingItems     Collection = "shopping_items"
	Notifications     Collection = "notifications"
)

// The "Registry" is a slice of all collections available
//
// It is maintained so that operations that affect all collections do not need to explicitly iterate over every single one,
// increasing the risk of forgetting something when adding a new model
var Registry = []Collection{
	Transactions,
	RecurringIncomes,
	RecurringExpenses,
	Categories,
	Wishes,
	ShoppingItems,
	Notifications,
}

func (c Collection) String() string {
	return string(c)
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
