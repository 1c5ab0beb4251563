package ledger

import (
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary holds the totals of the finance tracker.
type Summary struct {
	Income           decimal.Decimal `json:"income" example:"2500"`           // Sum of all income transactions
	Expense          decimal.Decimal `json:"expense" example:"1375.5"`        // Sum of all expense transactions
	Balance          decimal.Decimal `json:"balance" example:"1124.5"`        // Income minus expense
	FixedExpenses    decimal.Decimal `json:"fixedExpenses" example:"900"`     // Sum of expense transactions marked as fixed
	RecurringIncome  decimal.Decimal `json:"recurringIncome" example:"2500"`  // Sum of active recurring incomes per month
	RecurringExpense decimal.Decimal `json:"recurringExpense" example:"950"`  // Sum of active recurring expenses per month
	MonthlyNet       decimal.Decimal `json:"monthlyNet" example:"1550"`       // Recurring income minus recurring expense
	Budget           decimal.Decimal `json:"budget" example:"1200"`           // Sum of all category budgets
	ShoppingList     decimal.Decimal `json:"shoppingList" example:"23.4"`     // Price of all items not purchased yet
	Unread           int             `json:"unreadNotifications" example:"3"` // Number of unread notifications
}

// Summary computes the totals. If month is not the zero Month, only
// transactions in that month are counted.
func (s State) Summary(month types.Month) Summary {
	sum := Summary{
		Income:           decimal.Zero,
		Expense:          decimal.Zero,
		FixedExpenses:    decimal.Zero,
		RecurringIncome:  decimal.Zero,
		RecurringExpense: decimal.Zero,
		Budget:           decimal.Zero,
		ShoppingList:     decimal.Zero,
	}

	for _, t := range s.Transactions {
		if !month.IsZero() && !month.Contains(t.Date) {
			continue
		}

		if !t.IsExpense() {
			sum.Income = sum.Income.Add(t.Amount)
			continue
		}

		sum.Expense = sum.Expense.Add(t.Amount)
		if t.Fixed {
			sum.FixedExpenses = sum.FixedExpenses.Add(t.Amount)
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expense)

	for _, r := range s.RecurringIncomes {
		if r.Active {
			sum.RecurringIncome = sum.RecurringIncome.Add(r.Amount)
		}
	}

	for _, r := range s.RecurringExpenses {
		if r.Active {
			sum.RecurringExpense = sum.RecurringExpense.Add(r.Amount)
		}
	}
	sum.MonthlyNet = sum.RecurringIncome.Sub(sum.RecurringExpense)

	for _, c := range s.Categories {
		sum.Budget = sum.Budget.Add(c.MaxBudget)
	}

	for _, i := range s.ShoppingItems {
		if !i.Purchased {
			sum.ShoppingList = sum.ShoppingList.Add(i.Price)
		}
	}

	for _, n := range s.Notifications {
		if !n.Read {
			sum.Unread++
		}
	}

	return sum
}

// Summary computes the totals of the current state.
func (l *Ledger) Summary(month types.Month) Summary {
	return l.State().Summary(month)
}
