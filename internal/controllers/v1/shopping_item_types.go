package v1

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type ShoppingItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/shopping-items/9c1f2e55-4f0b-4a0e-b3c4-51f6db0f9a2d"` // The item itself
}

type ShoppingItem struct {
	models.ShoppingItem
	Links ShoppingItemLinks `json:"links"`
}

func newShoppingItem(c *gin.Context, model models.ShoppingItem) ShoppingItem {
	return ShoppingItem{
		ShoppingItem: model,
		Links: ShoppingItemLinks{
			Self: fmt.Sprintf("%s/v1/shopping-items/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type ShoppingItemQueryFilter struct {
	Purchased bool   `form:"purchased"`                  // Has the item been purchased?
	Search    string `form:"search" filterField:"false"` // By string in name, case insensitive
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first item returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of items to return. Defaults to 50.
}

func (f ShoppingItemQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f ShoppingItemQueryFilter) matcher(queryFields, setFields []string) (func(models.ShoppingItem) bool, error) {
	search := strings.ToLower(f.Search)

	return func(i models.ShoppingItem) bool {
		if slices.Contains(queryFields, "Purchased") && i.Purchased != f.Purchased {
			return false
		}

		return search == "" || strings.Contains(strings.ToLower(i.Name), search)
	}, nil
}
