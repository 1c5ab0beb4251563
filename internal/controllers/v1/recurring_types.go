package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type RecurringLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/recurring-expenses/6fd3f4a8-1b33-4f5e-a9b8-20a5b7d4c2e1"` // The resource itself
}

type RecurringIncome struct {
	models.RecurringIncome
	Links RecurringLinks `json:"links"`
}

func newRecurringIncome(c *gin.Context, model models.RecurringIncome) RecurringIncome {
	return RecurringIncome{
		RecurringIncome: model,
		Links: RecurringLinks{
			Self: fmt.Sprintf("%s/v1/recurring-incomes/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type RecurringExpense struct {
	models.RecurringExpense
	Links RecurringLinks `json:"links"`
}

func newRecurringExpense(c *gin.Context, model models.RecurringExpense) RecurringExpense {
	return RecurringExpense{
		RecurringExpense: model,
		Links: RecurringLinks{
			Self: fmt.Sprintf("%s/v1/recurring-expenses/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type RecurringQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name, case sensitive
	Active bool   `form:"active"`                     // Is the resource active?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first resource returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of resources to return. Defaults to 50.
}

func (f RecurringQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f RecurringQueryFilter) match(r models.Recurring, queryFields []string) bool {
	if slices.Contains(queryFields, "Active") && r.Active != f.Active {
		return false
	}

	return f.Name == "" || r.Name == f.Name
}

// RecurringIncomeQueryFilter filters recurring incomes.
type RecurringIncomeQueryFilter struct {
	RecurringQueryFilter
}

func (f RecurringIncomeQueryFilter) matcher(queryFields, setFields []string) (func(models.RecurringIncome) bool, error) {
	return func(r models.RecurringIncome) bool {
		return f.match(r.Recurring, queryFields)
	}, nil
}

// RecurringExpenseQueryFilter filters recurring expenses.
type RecurringExpenseQueryFilter struct {
	RecurringQueryFilter
}

func (f RecurringExpenseQueryFilter) matcher(queryFields, setFields []string) (func(models.RecurringExpense) bool, error) {
	return func(r models.RecurringExpense) bool {
		return f.match(r.Recurring, queryFields)
	}, nil
}
