package v1

import (
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterWishRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWishes)
		r.GET("", co.GetWishes)
		r.POST("", co.CreateWishes)
	}
	{
		r.OPTIONS("/:id", co.OptionsWishDetail)
		r.GET("/:id", co.GetWish)
		r.PATCH("/:id", co.UpdateWish)
		r.DELETE("/:id", co.DeleteWish)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishes
// @Success		204
// @Router			/v1/wishes [options]
func OptionsWishes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id} [options]
func (co Controller) OptionsWishDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Wish)
}

// @Summary		Create wishes
// @Description	Creates wishes from the list of submitted data. The response code is the highest response code number that a single creation would have caused.
// @Tags			Wishes
// @Produce		json
// @Success		201		{object}	CreateResponse[Wish]
// @Failure		400		{object}	CreateResponse[Wish]
// @Failure		500		{object}	CreateResponse[Wish]
// @Param			wishes	body		[]models.Wish	true	"Wishes"
// @Router			/v1/wishes [post]
func (co Controller) CreateWishes(c *gin.Context) {
	createMany(c, co.Ledger.CreateWish, co.wish(c))
}

// @Summary		Get wishes
// @Description	Returns a list of wishes
// @Tags			Wishes
// @Produce		json
// @Success		200	{object}	ListResponse[Wish]
// @Failure		400	{object}	ListResponse[Wish]
// @Router			/v1/wishes [get]
// @Param			status		query	string	false	"Filter by status"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			category	query	string	false	"Filter by category name"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first wish returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of wishes to return. Defaults to 50."
func (co Controller) GetWishes(c *gin.Context) {
	list[WishQueryFilter](c, co.Ledger.Wishes, co.wish(c))
}

// @Summary		Get wish
// @Description	Returns a specific wish
// @Tags			Wishes
// @Produce		json
// @Success		200	{object}	ObjectResponse[Wish]
// @Failure		400	{object}	ObjectResponse[Wish]
// @Failure		404	{object}	ObjectResponse[Wish]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/wishes/{id} [get]
func (co Controller) GetWish(c *gin.Context) {
	getOne(c, co.Ledger.Wish, co.wish(c))
}

// @Summary		Update wish
// @Description	Updates an existing wish. Only values to be updated need to be specified.
// @Tags			Wishes
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObjectResponse[Wish]
// @Failure		400		{object}	ObjectResponse[Wish]
// @Failure		404		{object}	ObjectResponse[Wish]
// @Failure		500		{object}	ObjectResponse[Wish]
// @Param			id		path		URIID		true	"ID formatted as string"
// @Param			wish	body		models.Wish	true	"Wish"
// @Router			/v1/wishes/{id} [patch]
func (co Controller) UpdateWish(c *gin.Context) {
	updateOne(c, co.Ledger.Wish, co.Ledger.UpdateWish, co.wish(c))
}

// @Summary		Delete wish
// @Description	Deletes a wish
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/wishes/{id} [delete]
func (co Controller) DeleteWish(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteWish)
}

func (co Controller) wish(c *gin.Context) func(models.Wish) Wish {
	return func(m models.Wish) Wish {
		return newWish(c, m)
	}
}
