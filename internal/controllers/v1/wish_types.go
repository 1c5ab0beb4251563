package v1

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type WishLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/wishes/0f3a3d4c-8b25-4f36-9a14-3b3e2a7c9d51"` // The wish itself
}

type Wish struct {
	models.Wish
	Links WishLinks `json:"links"`
}

func newWish(c *gin.Context, model models.Wish) Wish {
	return Wish{
		Wish: model,
		Links: WishLinks{
			Self: fmt.Sprintf("%s/v1/wishes/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type WishQueryFilter struct {
	Status   models.WishStatus   `form:"status"`                     // By status
	Priority models.WishPriority `form:"priority"`                   // By priority
	Category string              `form:"category"`                   // By category name
	Search   string              `form:"search" filterField:"false"` // By string in name, case insensitive
	Offset   uint                `form:"offset" filterField:"false"` // The offset of the first wish returned. Defaults to 0.
	Limit    int                 `form:"limit" filterField:"false"`  // Maximum number of wishes to return. Defaults to 50.
}

func (f WishQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f WishQueryFilter) matcher(queryFields, setFields []string) (func(models.Wish) bool, error) {
	search := strings.ToLower(f.Search)

	return func(w models.Wish) bool {
		if slices.Contains(queryFields, "Status") && w.Status != f.Status {
			return false
		}

		if slices.Contains(queryFields, "Priority") && w.Priority != f.Priority {
			return false
		}

		if slices.Contains(queryFields, "Category") && w.Category != f.Category {
			return false
		}

		return search == "" || strings.Contains(strings.ToLower(w.Name), search)
	}, nil
}
