package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type NotificationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notifications/7d9c3a71-2f0e-4ab1-9f0e-5c9d1f2e3a40"` // The notification itself
	Read string `json:"read" example:"https://example.com/api/v1/notifications/7d9c3a71-2f0e-4ab1-9f0e-5c9d1f2e3a40/read"` // Marks the notification as read
}

type Notification struct {
	models.Notification
	Links NotificationLinks `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	self := fmt.Sprintf("%s/v1/notifications/%s", httputil.BaseURL(c), model.ID)

	return Notification{
		Notification: model,
		Links: NotificationLinks{
			Self: self,
			Read: self + "/read",
		},
	}
}

type NotificationQueryFilter struct {
	Read     bool            `form:"read"`                       // Has the notification been read?
	Severity models.Severity `form:"severity"`                   // By severity
	Rule     string          `form:"rule"`                       // By the check that raised the notification
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first notification returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of notifications to return. Defaults to 50.
}

func (f NotificationQueryFilter) page() (uint, int) {
	return f.Offset, f.Limit
}

func (f NotificationQueryFilter) matcher(queryFields, setFields []string) (func(models.Notification) bool, error) {
	return func(n models.Notification) bool {
		if slices.Contains(queryFields, "Read") && n.Read != f.Read {
			return false
		}

		if slices.Contains(queryFields, "Severity") && n.Severity != f.Severity {
			return false
		}

		return !slices.Contains(queryFields, "Rule") || n.Rule == f.Rule
	}, nil
}
