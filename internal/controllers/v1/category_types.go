package v1

import (
	"fmt"
	neturl "net/url"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`  // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Food"`              // Transactions booked on the category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.BaseURL(c)

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, neturl.QueryEscape(model.Name)),
		},
	}
}

type CategoryQueryFilter struct {
	Name   string `form:"name"`                       // By name
	Search string `form:"search" filterField:"false"` // By string in name, case insensitive
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f CategoryQueryFilter) matcher(queryFields, setFields []string) (func(models.Category) bool, error) {
	search := strings.ToLower(f.Search)

	return func(c models.Category) bool {
		if len(queryFields) > 0 && c.Name != f.Name {
			return false
		}

		return search == "" || strings.Contains(strings.ToLower(c.Name), search)
	}, nil
}
