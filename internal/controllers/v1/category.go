package v1

import (
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Category)
}

// @Summary		Create categories
// @Description	Creates categories from the list of submitted data. The response code is the highest response code number that a single creation would have caused.
// @Tags			Categories
// @Produce		json
// @Success		201		{object}	CreateResponse[Category]
// @Failure		400		{object}	CreateResponse[Category]
// @Failure		500		{object}	CreateResponse[Category]
// @Param			categories	body		[]models.Category	true	"Categories"
// @Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	createMany(c, co.Ledger.CreateCategory, co.category(c))
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	ListResponse[Category]
// @Failure		400	{object}	ListResponse[Category]
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of categories to return. Defaults to 50."
func (co Controller) GetCategories(c *gin.Context) {
	list[CategoryQueryFilter](c, co.Ledger.Categories, co.category(c))
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	ObjectResponse[Category]
// @Failure		400	{object}	ObjectResponse[Category]
// @Failure		404	{object}	ObjectResponse[Category]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	getOne(c, co.Ledger.Category, co.category(c))
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObjectResponse[Category]
// @Failure		400		{object}	ObjectResponse[Category]
// @Failure		404		{object}	ObjectResponse[Category]
// @Failure		500		{object}	ObjectResponse[Category]
// @Param			id		path		URIID		true	"ID formatted as string"
// @Param			category	body		models.Category	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	updateOne(c, co.Ledger.Category, co.Ledger.UpdateCategory, co.category(c))
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteCategory)
}

func (co Controller) category(c *gin.Context) func(models.Category) Category {
	return func(m models.Category) Category {
		return newCategory(c, m)
	}
}
