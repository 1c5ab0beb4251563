package v1

import (
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRecurringIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRecurringIncomes)
		r.GET("", co.GetRecurringIncomes)
		r.POST("", co.CreateRecurringIncomes)
	}
	{
		r.OPTIONS("/:id", co.OptionsRecurringIncomeDetail)
		r.GET("/:id", co.GetRecurringIncome)
		r.PATCH("/:id", co.UpdateRecurringIncome)
		r.DELETE("/:id", co.DeleteRecurringIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Incomes
// @Success		204
// @Router			/v1/recurring-incomes [options]
func OptionsRecurringIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-incomes/{id} [options]
func (co Controller) OptionsRecurringIncomeDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.RecurringIncome)
}

// @Summary		Create recurring incomes
// @Description	Creates recurring incomes from the list of submitted data. The response code is the highest response code number that a single creation would have caused.
// @Tags			Recurring Incomes
// @Produce		json
// @Success		201		{object}	CreateResponse[RecurringIncome]
// @Failure		400		{object}	CreateResponse[RecurringIncome]
// @Failure		500		{object}	CreateResponse[RecurringIncome]
// @Param			incomes	body		[]models.RecurringIncome	true	"Recurring Incomes"
// @Router			/v1/recurring-incomes [post]
func (co Controller) CreateRecurringIncomes(c *gin.Context) {
	createMany(c, co.Ledger.CreateRecurringIncome, co.recurringIncome(c))
}

// @Summary		Get recurring incomes
// @Description	Returns a list of recurring incomes
// @Tags			Recurring Incomes
// @Produce		json
// @Success		200	{object}	ListResponse[RecurringIncome]
// @Failure		400	{object}	ListResponse[RecurringIncome]
// @Router			/v1/recurring-incomes [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the recurring income active?"
// @Param			offset	query	uint	false	"The offset of the first resource returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of resources to return. Defaults to 50."
func (co Controller) GetRecurringIncomes(c *gin.Context) {
	list[RecurringIncomeQueryFilter](c, co.Ledger.RecurringIncomes, co.recurringIncome(c))
}

// @Summary		Get recurring income
// @Description	Returns a specific recurring income
// @Tags			Recurring Incomes
// @Produce		json
// @Success		200	{object}	ObjectResponse[RecurringIncome]
// @Failure		400	{object}	ObjectResponse[RecurringIncome]
// @Failure		404	{object}	ObjectResponse[RecurringIncome]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-incomes/{id} [get]
func (co Controller) GetRecurringIncome(c *gin.Context) {
	getOne(c, co.Ledger.RecurringIncome, co.recurringIncome(c))
}

// @Summary		Update recurring income
// @Description	Updates an existing recurring income. Only values to be updated need to be specified.
// @Tags			Recurring Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObjectResponse[RecurringIncome]
// @Failure		400		{object}	ObjectResponse[RecurringIncome]
// @Failure		404		{object}	ObjectResponse[RecurringIncome]
// @Failure		500		{object}	ObjectResponse[RecurringIncome]
// @Param			id		path		URIID		true	"ID formatted as string"
// @Param			income	body		models.RecurringIncome	true	"Recurring income"
// @Router			/v1/recurring-incomes/{id} [patch]
func (co Controller) UpdateRecurringIncome(c *gin.Context) {
	updateOne(c, co.Ledger.RecurringIncome, co.Ledger.UpdateRecurringIncome, co.recurringIncome(c))
}

// @Summary		Delete recurring income
// @Description	Deletes a recurring income
// @Tags			Recurring Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-incomes/{id} [delete]
func (co Controller) DeleteRecurringIncome(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteRecurringIncome)
}

func (co Controller) recurringIncome(c *gin.Context) func(models.RecurringIncome) RecurringIncome {
	return func(m models.RecurringIncome) RecurringIncome {
		return newRecurringIncome(c, m)
	}
}
