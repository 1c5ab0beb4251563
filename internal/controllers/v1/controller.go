// Package v1 implements the v1 JSON API of the finance tracker.
package v1

import (
	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Ledger *ledger.Ledger
	Bus    *events.Bus
}

// RegisterRoutes registers all v1 routes on r.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", Options)
		r.GET("", Get)
		r.DELETE("", co.Cleanup)
	}

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterRecurringIncomeRoutes(r.Group("/recurring-incomes"))
	co.RegisterRecurringExpenseRoutes(r.Group("/recurring-expenses"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterWishRoutes(r.Group("/wishes"))
	co.RegisterShoppingItemRoutes(r.Group("/shopping-items"))
	co.RegisterNotificationRoutes(r.Group("/notifications"))
	co.RegisterSummaryRoutes(r.Group("/summary"))
	co.RegisterEventRoutes(r.Group("/events"))
}
