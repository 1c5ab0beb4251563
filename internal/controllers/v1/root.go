package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Links struct {
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions"`             // URL of transaction list endpoint
	RecurringIncomes  string `json:"recurringIncomes" example:"https://example.com/api/v1/recurring-incomes"`   // URL of recurring income list endpoint
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // URL of recurring expense list endpoint
	Categories        string `json:"categories" example:"https://example.com/api/v1/categories"`                // URL of category list endpoint
	Wishes            string `json:"wishes" example:"https://example.com/api/v1/wishes"`                        // URL of wish list endpoint
	ShoppingItems     string `json:"shoppingItems" example:"https://example.com/api/v1/shopping-items"`         // URL of shopping item list endpoint
	Notifications     string `json:"notifications" example:"https://example.com/api/v1/notifications"`          // URL of notification list endpoint
	Summary           string `json:"summary" example:"https://example.com/api/v1/summary"`                      // URL of the summary endpoint
	Events            string `json:"events" example:"https://example.com/api/v1/events"`                        // URL of the change event stream
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions:      url + "/transactions",
			RecurringIncomes:  url + "/recurring-incomes",
			RecurringExpenses: url + "/recurring-expenses",
			Categories:        url + "/categories",
			Wishes:            url + "/wishes",
			ShoppingItems:     url + "/shopping-items",
			Notifications:     url + "/notifications",
			Summary:           url + "/summary",
			Events:            url + "/events",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	if err := co.Ledger.Reset(c.Request.Context()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
