// Package rules inspects the financial state and drafts notifications
// when a threshold is crossed.
//
// Evaluation is pure. The drafts returned have no ID and no timestamps,
// they are completed when they are stored. Nothing is deduplicated: the
// same state evaluated twice yields the same notifications twice.
package rules

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Snapshot is the state a rule looks at.
type Snapshot struct {
	Now               time.Time
	Transactions      []models.Transaction
	Categories        []models.Category
	Wishes            []models.Wish
	RecurringExpenses []models.RecurringExpense
}

// Evaluator runs the rules that belong to a kind of mutation.
type Evaluator struct {
	Currency currency.Unit // Printed after every amount in messages
}

// AfterTransaction runs both budget checks and the wish affordability check.
func (e Evaluator) AfterTransaction(s Snapshot) []models.Notification {
	return concat(e.Budget(s), e.BudgetProgress(s), e.Wishes(s))
}

// AfterCategory runs both budget checks.
func (e Evaluator) AfterCategory(s Snapshot) []models.Notification {
	return concat(e.Budget(s), e.BudgetProgress(s))
}

func (e Evaluator) AfterRecurringExpense(s Snapshot) []models.Notification {
	return e.DueDates(s)
}

func (e Evaluator) AfterWish(s Snapshot) []models.Notification {
	return e.Wishes(s)
}

// All runs every rule.
func (e Evaluator) All(s Snapshot) []models.Notification {
	return concat(e.Budget(s), e.BudgetProgress(s), e.Wishes(s), e.DueDates(s))
}

// Spent is the sum of all expenses booked on the category with the given name.
func Spent(transactions []models.Transaction, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() && t.Category == category {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}

// Balance is total income minus total expense.
func Balance(transactions []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() {
			balance = balance.Sub(t.Amount)
		} else {
			balance = balance.Add(t.Amount)
		}
	}

	return balance
}

func (e Evaluator) amount(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + e.Currency.String()
}

func draft(rule string, severity models.Severity, title, message string, target models.DefaultModel) models.Notification {
	id := target.ID
	return models.Notification{
		Title:    title,
		Message:  message,
		Severity: severity,
		Rule:     rule,
		Target:   &id,
	}
}

func concat(lists ...[]models.Notification) []models.Notification {
	var out []models.Notification
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}
