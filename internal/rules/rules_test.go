package rules_test

import (
	"testing"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rules"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var evaluator = rules.Evaluator{Currency: currency.EUR}

func expense(category, amount string) models.Transaction {
	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Kind:         models.KindExpense,
		Category:     category,
		Description:  "Expense",
		Amount:       decimal.RequireFromString(amount),
	}
}

func income(amount string) models.Transaction {
	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Kind:         models.KindIncome,
		Description:  "Income",
		Amount:       decimal.RequireFromString(amount),
	}
}

func category(name, budget string) models.Category {
	return models.Category{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Name:         name,
		MaxBudget:    decimal.RequireFromString(budget),
	}
}

func rulesOf(notifications []models.Notification) []string {
	out := []string{}
	for _, n := range notifications {
		out = append(out, n.Rule)
	}
	return out
}

func TestSpentAndBalance(t *testing.T) {
	transactions := []models.Transaction{
		expense("Food", "10.50"),
		expense("Food", "4.50"),
		expense("Rent", "800"),
		income("1000"),
	}

	assert.True(t, decimal.NewFromInt(15).Equal(rules.Spent(transactions, "Food")))
	assert.True(t, decimal.Zero.Equal(rules.Spent(transactions, "Hobbies")))
	assert.True(t, decimal.NewFromInt(185).Equal(rules.Balance(transactions)))
}

// TestFoodAt75Percent is the scenario of a Food budget of 500.00 with three
// expenses totalling 375.00.
func TestFoodAt75Percent(t *testing.T) {
	food := category("Food", "500.00")
	s := rules.Snapshot{
		Categories: []models.Category{food},
		Transactions: []models.Transaction{
			expense("Food", "125.00"),
			expense("Food", "200.00"),
			expense("Food", "50.00"),
		},
	}

	notifications := evaluator.AfterTransaction(s)
	require.Len(t, notifications, 1)

	n := notifications[0]
	assert.Equal(t, "75% of budget", n.Title)
	assert.Equal(t, models.SeverityInfo, n.Severity)
	assert.Equal(t, rules.RuleBudgetProgress75, n.Rule)
	assert.Equal(t, "Food has used 75% of its budget (375.00/500.00 EUR)", n.Message)
	assert.Equal(t, food.ID, *n.Target)
	assert.Equal(t, uuid.Nil, n.ID, "drafts must not have an ID")
}

func TestBudgetTiers(t *testing.T) {
	tests := []struct {
		spent    string
		budget   []string // Expected rules of the first check
		progress []string // Expected rules of the second check
	}{
		{"0", []string{}, []string{}},
		{"374.99", []string{}, []string{}},
		{"375", []string{}, []string{rules.RuleBudgetProgress75}},
		{"400", []string{rules.RuleBudgetWarning}, []string{rules.RuleBudgetProgress75}},
		{"450", []string{rules.RuleBudgetWarning}, []string{rules.RuleBudgetProgress90}},
		{"499.99", []string{rules.RuleBudgetWarning}, []string{rules.RuleBudgetProgress90}},
		{"500", []string{rules.RuleBudgetExceeded}, []string{rules.RuleBudgetFull}},
		{"512", []string{rules.RuleBudgetExceeded}, []string{rules.RuleBudgetOver}},
	}

	for _, tt := range tests {
		t.Run(tt.spent, func(t *testing.T) {
			s := rules.Snapshot{
				Categories:   []models.Category{category("Food", "500")},
				Transactions: []models.Transaction{expense("Food", tt.spent)},
			}

			assert.Equal(t, tt.budget, rulesOf(evaluator.Budget(s)))
			assert.Equal(t, tt.progress, rulesOf(evaluator.BudgetProgress(s)))
		})
	}
}

func TestBudgetMessages(t *testing.T) {
	s := rules.Snapshot{
		Categories:   []models.Category{category("Food", "500")},
		Transactions: []models.Transaction{expense("Food", "512")},
	}

	budget := evaluator.Budget(s)
	require.Len(t, budget, 1)
	assert.Equal(t, models.SeverityError, budget[0].Severity)
	assert.Equal(t, "You have exceeded the budget for Food (512.00/500.00 EUR)", budget[0].Message)

	progress := evaluator.BudgetProgress(s)
	require.Len(t, progress, 1)
	assert.Equal(t, models.SeverityError, progress[0].Severity)
	assert.Equal(t, "Food is over budget by 12.00 EUR (512.00/500.00 EUR)", progress[0].Message)

	s.Transactions = []models.Transaction{expense("Food", "425")}
	budget = evaluator.Budget(s)
	require.Len(t, budget, 1)
	assert.Equal(t, models.SeverityWarning, budget[0].Severity)
	assert.Equal(t, "You have used 85% of the budget for Food (425.00/500.00 EUR)", budget[0].Message)
}

func TestBudgetIgnoresIncomeAndOtherCategories(t *testing.T) {
	s := rules.Snapshot{
		Categories: []models.Category{category("Food", "100"), category("Unlimited", "0")},
		Transactions: []models.Transaction{
			expense("Rent", "800"),
			expense("Unlimited", "800"),
			{Kind: models.KindIncome, Category: "Food", Amount: decimal.NewFromInt(100)},
		},
	}

	assert.Empty(t, evaluator.AfterCategory(s))
}

func TestWishAffordable(t *testing.T) {
	bike := models.Wish{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "Bike", EstimatedPrice: decimal.NewFromInt(500), Status: models.StatusPending}
	car := models.Wish{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "Car", EstimatedPrice: decimal.NewFromInt(20000), Status: models.StatusSaving}
	done := models.Wish{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "Book", EstimatedPrice: decimal.NewFromInt(10), Status: models.StatusAchieved}

	s := rules.Snapshot{
		Wishes:       []models.Wish{bike, car, done},
		Transactions: []models.Transaction{income("1000"), expense("Food", "500")},
	}

	notifications := evaluator.AfterWish(s)
	require.Len(t, notifications, 1, "only wishes with a price up to the balance that are not achieved are reported")
	assert.Equal(t, rules.RuleWishAffordable, notifications[0].Rule)
	assert.Equal(t, models.SeveritySuccess, notifications[0].Severity)
	assert.Equal(t, "Wish can be achieved", notifications[0].Title)
	assert.Equal(t, "You can afford Bike (500.00 EUR) with your balance of 500.00 EUR", notifications[0].Message)
	assert.Equal(t, bike.ID, *notifications[0].Target)

	// Unchanged state reports again
	assert.Equal(t, notifications, evaluator.AfterWish(s))
}

func TestWishNotAffordable(t *testing.T) {
	s := rules.Snapshot{
		Wishes:       []models.Wish{{Name: "Bike", EstimatedPrice: decimal.NewFromInt(500)}},
		Transactions: []models.Transaction{income("499.99")},
	}

	assert.Empty(t, evaluator.Wishes(s))
}

func TestDaysUntilCharge(t *testing.T) {
	tests := []struct {
		today string
		day   int
		days  int
	}{
		{"2024-03-08", 15, 7},
		{"2024-03-12", 15, 3},
		{"2024-03-15", 15, 0},
		{"2024-03-16", 15, -1},
		{"2024-03-17", 15, 29},
		{"2024-03-31", 1, 1},
		{"2024-04-30", 31, 0},
		{"2024-05-01", 31, -1},
		{"2024-02-22", 30, 7},
		{"2023-12-29", 5, 7},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			now, err := time.Parse(time.DateOnly, tt.today)
			require.Nil(t, err)

			assert.Equal(t, tt.days, rules.DaysUntilCharge(now.Add(15*time.Hour), tt.day))
		})
	}
}

func TestDueDates(t *testing.T) {
	netflix := models.RecurringExpense{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Recurring:    models.Recurring{Name: "Netflix", Amount: decimal.RequireFromString("12.99"), ChargeDay: 15, Active: true},
	}
	inactive := netflix
	inactive.ID = uuid.New()
	inactive.Active = false

	tests := []struct {
		today    string
		rule     string
		severity models.Severity
		title    string
		message  string
	}{
		{"2024-03-08", rules.RuleDue7, models.SeverityInfo, "Payment due in 7 days", "Netflix (12.99 EUR) will be charged on 2024-03-15"},
		{"2024-03-12", rules.RuleDue3, models.SeverityWarning, "Payment due in 3 days", "Netflix (12.99 EUR) will be charged on 2024-03-15"},
		{"2024-03-15", rules.RuleDueToday, models.SeverityWarning, "Payment due today", "Netflix (12.99 EUR) will be charged today"},
		{"2024-03-16", rules.RuleDueOverdue, models.SeverityError, "Payment overdue", "Netflix (12.99 EUR) was due yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			now, _ := time.Parse(time.DateOnly, tt.today)
			s := rules.Snapshot{Now: now.Add(9 * time.Hour), RecurringExpenses: []models.RecurringExpense{netflix, inactive}}

			notifications := evaluator.AfterRecurringExpense(s)
			require.Len(t, notifications, 1, "exactly one reminder per call")
			assert.Equal(t, tt.rule, notifications[0].Rule)
			assert.Equal(t, tt.severity, notifications[0].Severity)
			assert.Equal(t, tt.title, notifications[0].Title)
			assert.Equal(t, tt.message, notifications[0].Message)
			assert.Equal(t, netflix.ID, *notifications[0].Target)

			// Same day, same reminder
			assert.Len(t, evaluator.AfterRecurringExpense(s), 1)
		})
	}
}

func TestDueDatesQuietDays(t *testing.T) {
	netflix := models.RecurringExpense{Recurring: models.Recurring{Name: "Netflix", ChargeDay: 15, Active: true}}

	for _, today := range []string{"2024-03-07", "2024-03-10", "2024-03-14", "2024-03-17"} {
		now, _ := time.Parse(time.DateOnly, today)
		assert.Empty(t, evaluator.DueDates(rules.Snapshot{Now: now, RecurringExpenses: []models.RecurringExpense{netflix}}), today)
	}
}

func TestAll(t *testing.T) {
	now, _ := time.Parse(time.DateOnly, "2024-03-15")
	s := rules.Snapshot{
		Now:               now,
		Categories:        []models.Category{category("Food", "100")},
		Transactions:      []models.Transaction{income("1000"), expense("Food", "100")},
		Wishes:            []models.Wish{{Name: "Bike", EstimatedPrice: decimal.NewFromInt(500)}},
		RecurringExpenses: []models.RecurringExpense{{Recurring: models.Recurring{Name: "Gym", ChargeDay: 15, Active: true}}},
	}

	assert.Equal(t, []string{
		rules.RuleBudgetExceeded,
		rules.RuleBudgetFull,
		rules.RuleWishAffordable,
		rules.RuleDueToday,
	}, rulesOf(evaluator.All(s)))
}
