package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterShoppingItemRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsShoppingItems)
		r.GET("", co.GetShoppingItems)
		r.POST("", co.CreateShoppingItems)
		r.DELETE("", co.ClearPurchased)
	}
	{
		r.OPTIONS("/:id", co.OptionsShoppingItemDetail)
		r.GET("/:id", co.GetShoppingItem)
		r.PATCH("/:id", co.UpdateShoppingItem)
		r.DELETE("/:id", co.DeleteShoppingItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shopping Items
// @Success		204
// @Router			/v1/shopping-items [options]
func OptionsShoppingItems(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shopping Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shopping-items/{id} [options]
func (co Controller) OptionsShoppingItemDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.ShoppingItem)
}

// @Summary		Create shopping items
// @Description	Creates shopping items from the list of submitted data. The response code is the highest response code number that a single creation would have caused.
// @Tags			Shopping Items
// @Produce		json
// @Success		201		{object}	CreateResponse[ShoppingItem]
// @Failure		400		{object}	CreateResponse[ShoppingItem]
// @Failure		500		{object}	CreateResponse[ShoppingItem]
// @Param			items	body		[]models.ShoppingItem	true	"Shopping Items"
// @Router			/v1/shopping-items [post]
func (co Controller) CreateShoppingItems(c *gin.Context) {
	createMany(c, co.Ledger.CreateShoppingItem, co.shoppingItem(c))
}

// @Summary		Get shopping items
// @Description	Returns a list of shopping items
// @Tags			Shopping Items
// @Produce		json
// @Success		200	{object}	ListResponse[ShoppingItem]
// @Failure		400	{object}	ListResponse[ShoppingItem]
// @Router			/v1/shopping-items [get]
// @Param			purchased	query	bool	false	"Has the item been purchased?"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of items to return. Defaults to 50."
func (co Controller) GetShoppingItems(c *gin.Context) {
	list[ShoppingItemQueryFilter](c, co.Ledger.ShoppingItems, co.shoppingItem(c))
}

// @Summary		Clear purchased items
// @Description	Deletes all shopping items that have been purchased
// @Tags			Shopping Items
// @Produce		json
// @Success		200			{object}	CountResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			purchased	query		bool	true	"Must be true"
// @Router			/v1/shopping-items [delete]
func (co Controller) ClearPurchased(c *gin.Context) {
	var params struct {
		Purchased bool `form:"purchased"`
	}

	if err := c.ShouldBindQuery(&params); err != nil || !params.Purchased {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPurchasedRequired.Error(),
		})
		return
	}

	count, err := co.Ledger.ClearPurchased(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// @Summary		Get shopping item
// @Description	Returns a specific shopping item
// @Tags			Shopping Items
// @Produce		json
// @Success		200	{object}	ObjectResponse[ShoppingItem]
// @Failure		400	{object}	ObjectResponse[ShoppingItem]
// @Failure		404	{object}	ObjectResponse[ShoppingItem]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/shopping-items/{id} [get]
func (co Controller) GetShoppingItem(c *gin.Context) {
	getOne(c, co.Ledger.ShoppingItem, co.shoppingItem(c))
}

// @Summary		Update shopping item
// @Description	Updates an existing shopping item. Only values to be updated need to be specified.
// @Tags			Shopping Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObjectResponse[ShoppingItem]
// @Failure		400		{object}	ObjectResponse[ShoppingItem]
// @Failure		404		{object}	ObjectResponse[ShoppingItem]
// @Failure		500		{object}	ObjectResponse[ShoppingItem]
// @Param			id		path		URIID		true	"ID formatted as string"
// @Param			item	body		models.ShoppingItem	true	"Shopping item"
// @Router			/v1/shopping-items/{id} [patch]
func (co Controller) UpdateShoppingItem(c *gin.Context) {
	updateOne(c, co.Ledger.ShoppingItem, co.Ledger.UpdateShoppingItem, co.shoppingItem(c))
}

// @Summary		Delete shopping item
// @Description	Deletes a shopping item
// @Tags			Shopping Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/shopping-items/{id} [delete]
func (co Controller) DeleteShoppingItem(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteShoppingItem)
}

func (co Controller) shoppingItem(c *gin.Context) func(models.ShoppingItem) ShoppingItem {
	return func(m models.ShoppingItem) ShoppingItem {
		return newShoppingItem(c, m)
	}
}
