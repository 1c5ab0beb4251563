package v1

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type TransactionQueryFilter struct {
	Kind              models.TransactionKind `form:"kind"`                                  // Income or expense
	Category          string                 `form:"category"`                              // Exact category name
	Fixed             bool                   `form:"fixed"`                                 // Is the transaction a fixed cost?
	Month             string                 `form:"month" filterField:"false"`             // Month of the date in YYYY-MM format
	Description       string                 `form:"description" filterField:"false"`       // Glob pattern for the description, e.g. "*rent*"
	Search            string                 `form:"search" filterField:"false"`            // By string in description or notes
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f TransactionQueryFilter) matcher(queryFields, setFields []string) (func(models.Transaction) bool, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return nil, err
		}
		month = m
	}

	description := strings.ToLower(f.Description)
	search := strings.ToLower(f.Search)

	return func(t models.Transaction) bool {
		if slices.Contains(queryFields, "Kind") && t.Kind != f.Kind {
			return false
		}

		if slices.Contains(queryFields, "Category") && t.Category != f.Category {
			return false
		}

		if slices.Contains(queryFields, "Fixed") && t.Fixed != f.Fixed {
			return false
		}

		if !month.IsZero() && types.MonthOf(t.Date) != month {
			return false
		}

		if description != "" && !glob.Glob(description, strings.ToLower(t.Description)) {
			return false
		}

		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) && !strings.Contains(strings.ToLower(t.Notes), search) {
			return false
		}

		if slices.Contains(setFields, "AmountLessOrEqual") && t.Amount.GreaterThan(f.AmountLessOrEqual) {
			return false
		}

		if slices.Contains(setFields, "AmountMoreOrEqual") && t.Amount.LessThan(f.AmountMoreOrEqual) {
			return false
		}

		return true
	}, nil
}
