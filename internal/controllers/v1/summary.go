package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/ledger"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data  ledger.Summary `json:"data"`
	Month *types.Month   `json:"month" example:"2024-03"` // The month the totals of transactions are limited to, if any
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the totals of all transactions, recurring incomes and expenses, budgets and the shopping list
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	httpError
// @Param			month	query		string	false	"Only count transactions in this month, YYYY-MM format"
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query struct {
		Month string `form:"month"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	var r SummaryResponse
	var month types.Month
	if query.Month != "" {
		m, err := types.ParseMonth(query.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: err.Error(),
			})
			return
		}

		month = m
		r.Month = &month
	}

	r.Data = co.Ledger.Summary(month)
	c.JSON(http.StatusOK, r)
}
