package v1

import (
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRecurringExpenses)
		r.GET("", co.GetRecurringExpenses)
		r.POST("", co.CreateRecurringExpenses)
	}
	{
		r.OPTIONS("/:id", co.OptionsRecurringExpenseDetail)
		r.GET("/:id", co.GetRecurringExpense)
		r.PATCH("/:id", co.UpdateRecurringExpense)
		r.DELETE("/:id", co.DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
func (co Controller) OptionsRecurringExpenseDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.RecurringExpense)
}

// @Summary		Create recurring expenses
// @Description	Creates recurring expenses from the list of submitted data. The response code is the highest response code number that a single creation would have caused.
// @Tags			Recurring Expenses
// @Produce		json
// @Success		201		{object}	CreateResponse[RecurringExpense]
// @Failure		400		{object}	CreateResponse[RecurringExpense]
// @Failure		500		{object}	CreateResponse[RecurringExpense]
// @Param			expenses	body		[]models.RecurringExpense	true	"Recurring Expenses"
// @Router			/v1/recurring-expenses [post]
func (co Controller) CreateRecurringExpenses(c *gin.Context) {
	createMany(c, co.Ledger.CreateRecurringExpense, co.recurringExpense(c))
}

// @Summary		Get recurring expenses
// @Description	Returns a list of recurring expenses
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	ListResponse[RecurringExpense]
// @Failure		400	{object}	ListResponse[RecurringExpense]
// @Router			/v1/recurring-expenses [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the recurring expense active?"
// @Param			offset	query	uint	false	"The offset of the first resource returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of resources to return. Defaults to 50."
func (co Controller) GetRecurringExpenses(c *gin.Context) {
	list[RecurringExpenseQueryFilter](c, co.Ledger.RecurringExpenses, co.recurringExpense(c))
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	ObjectResponse[RecurringExpense]
// @Failure		400	{object}	ObjectResponse[RecurringExpense]
// @Failure		404	{object}	ObjectResponse[RecurringExpense]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-expenses/{id} [get]
func (co Controller) GetRecurringExpense(c *gin.Context) {
	getOne(c, co.Ledger.RecurringExpense, co.recurringExpense(c))
}

// @Summary		Update recurring expense
// @Description	Updates an existing recurring expense. Only values to be updated need to be specified.
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObjectResponse[RecurringExpense]
// @Failure		400		{object}	ObjectResponse[RecurringExpense]
// @Failure		404		{object}	ObjectResponse[RecurringExpense]
// @Failure		500		{object}	ObjectResponse[RecurringExpense]
// @Param			id		path		URIID		true	"ID formatted as string"
// @Param			expense	body		models.RecurringExpense	true	"Recurring expense"
// @Router			/v1/recurring-expenses/{id} [patch]
func (co Controller) UpdateRecurringExpense(c *gin.Context) {
	updateOne(c, co.Ledger.RecurringExpense, co.Ledger.UpdateRecurringExpense, co.recurringExpense(c))
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense
// @Tags			Recurring Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-expenses/{id} [delete]
func (co Controller) DeleteRecurringExpense(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteRecurringExpense)
}

func (co Controller) recurringExpense(c *gin.Context) func(models.RecurringExpense) RecurringExpense {
	return func(m models.RecurringExpense) RecurringExpense {
		return newRecurringExpense(c, m)
	}
}
