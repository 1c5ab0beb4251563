package rules

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

const (
	RuleBudgetExceeded   = "budget.exceeded"
	RuleBudgetWarning    = "budget.warning"
	RuleBudgetFull       = "budget.full"
	RuleBudgetOver       = "budget.over"
	RuleBudgetProgress90 = "budget.progress.90"
	RuleBudgetProgress75 = "budget.progress.75"
)

var (
	hundred      = decimal.NewFromInt(100)
	warningRatio = decimal.RequireFromString("0.8")
	ratio90      = decimal.RequireFromString("0.9")
	ratio75      = decimal.RequireFromString("0.75")
)

// percent returns spent as a whole percentage of budget, rounded down.
func percent(spent, budget decimal.Decimal) int64 {
	return spent.Mul(hundred).Div(budget).Floor().IntPart()
}

// Budget alerts at 80% and 100% of the budget of every category that has one.
func (e Evaluator) Budget(s Snapshot) []models.Notification {
	var out []models.Notification

	for _, c := range s.Categories {
		if !c.MaxBudget.IsPositive() {
			continue
		}

		spent := Spent(s.Transactions, c.Name)
		ratio := spent.Div(c.MaxBudget)
		usage := fmt.Sprintf("(%s/%s)", spent.StringFixed(2), e.amount(c.MaxBudget))

		switch {
		case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
			out = append(out, draft(RuleBudgetExceeded, models.SeverityError, "Budget exceeded",
				fmt.Sprintf("You have exceeded the budget for %s %s", c.Name, usage), c.DefaultModel))
		case ratio.GreaterThanOrEqual(warningRatio):
			out = append(out, draft(RuleBudgetWarning, models.SeverityWarning, "Budget almost used up",
				fmt.Sprintf("You have used %d%% of the budget for %s %s", percent(spent, c.MaxBudget), c.Name, usage), c.DefaultModel))
		}
	}

	return out
}

// BudgetProgress reports finer grained budget usage at 75%, 90%, exactly
// 100% and above 100%.
//
// It runs independently of Budget and can report the same category again.
func (e Evaluator) BudgetProgress(s Snapshot) []models.Notification {
	var out []models.Notification

	for _, c := range s.Categories {
		if !c.MaxBudget.IsPositive() {
			continue
		}

		spent := Spent(s.Transactions, c.Name)
		ratio := spent.Div(c.MaxBudget)
		usage := fmt.Sprintf("(%s/%s)", spent.StringFixed(2), e.amount(c.MaxBudget))

		switch {
		case spent.Equal(c.MaxBudget):
			out = append(out, draft(RuleBudgetFull, models.SeverityWarning, "Budget used up",
				fmt.Sprintf("%s has used its entire budget %s", c.Name, usage), c.DefaultModel))
		case spent.GreaterThan(c.MaxBudget):
			out = append(out, draft(RuleBudgetOver, models.SeverityError, "Budget exceeded",
				fmt.Sprintf("%s is over budget by %s %s", c.Name, e.amount(spent.Sub(c.MaxBudget)), usage), c.DefaultModel))
		case ratio.GreaterThanOrEqual(ratio90):
			out = append(out, draft(RuleBudgetProgress90, models.SeverityWarning, "90% of budget",
				fmt.Sprintf("%s has used %d%% of its budget %s", c.Name, percent(spent, c.MaxBudget), usage), c.DefaultModel))
		case ratio.GreaterThanOrEqual(ratio75):
			out = append(out, draft(RuleBudgetProgress75, models.SeverityInfo, "75% of budget",
				fmt.Sprintf("%s has used %d%% of its budget %s", c.Name, percent(spent, c.MaxBudget), usage), c.DefaultModel))
		}
	}

	return out
}
