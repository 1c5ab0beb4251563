package v1

import (
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Transaction)
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	CreateResponse[Transaction]
// @Failure		400				{object}	CreateResponse[Transaction]
// @Failure		500				{object}	CreateResponse[Transaction]
// @Param			transactions	body		[]models.Transaction	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	createMany(c, co.Ledger.CreateTransaction, co.transaction(c))
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	ListResponse[Transaction]
// @Failure		400	{object}	ListResponse[Transaction]
// @Router			/v1/transactions [get]
// @Param			kind				query	string	false	"Filter by kind, income or expense"
// @Param			category			query	string	false	"Filter by category name"
// @Param			fixed				query	bool	false	"Is the transaction a fixed cost?"
// @Param			month				query	string	false	"Month of the transaction date in YYYY-MM format"
// @Param			description			query	string	false	"Glob pattern the description must match, case insensitive"
// @Param			search				query	string	false	"Search for this text in description and notes"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			offset				query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	list[TransactionQueryFilter](c, co.transactionsByDate, co.transaction(c))
}

// transactionsByDate returns all transactions, newest first.
func (co Controller) transactionsByDate() []models.Transaction {
	transactions := co.Ledger.Transactions()
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return transactions
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	ObjectResponse[Transaction]
// @Failure		400	{object}	ObjectResponse[Transaction]
// @Failure		404	{object}	ObjectResponse[Transaction]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	getOne(c, co.Ledger.Transaction, co.transaction(c))
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	ObjectResponse[Transaction]
// @Failure		400			{object}	ObjectResponse[Transaction]
// @Failure		404			{object}	ObjectResponse[Transaction]
// @Failure		500			{object}	ObjectResponse[Transaction]
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	updateOne(c, co.Ledger.Transaction, co.Ledger.UpdateTransaction, co.transaction(c))
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteTransaction)
}

func (co Controller) transaction(c *gin.Context) func(models.Transaction) Transaction {
	return func(t models.Transaction) Transaction {
		return newTransaction(c, t)
	}
}
