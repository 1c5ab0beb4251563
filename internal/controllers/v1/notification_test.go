package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rules"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) notifications(query string) []v1.Notification {
	r := suite.request(http.MethodGet, "http://example.com/v1/notifications?"+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ListResponse[v1.Notification]
	test.DecodeResponse(suite.T(), &r, &list)
	return list.Data
}

func (suite *TestSuiteStandard) TestNotificationsBudgetExceeded() {
	food := suite.createCategory(map[string]any{"name": "Food", "maxBudget": "500"})
	suite.createTransaction(expense("Groceries", "Food", "512", "2024-03-04T00:00:00Z"))

	exceeded := suite.notifications("rule=" + rules.RuleBudgetExceeded)
	require.Len(suite.T(), exceeded, 1)
	assert.Equal(suite.T(), "Budget exceeded", exceeded[0].Title)
	assert.Equal(suite.T(), "You have exceeded the budget for Food (512.00/500.00 EUR)", exceeded[0].Message)
	assert.Equal(suite.T(), models.SeverityError, exceeded[0].Severity)
	assert.Equal(suite.T(), food.ID, *exceeded[0].Target)
	assert.False(suite.T(), exceeded[0].Read)

	over := suite.notifications("rule=" + rules.RuleBudgetOver)
	require.Len(suite.T(), over, 1)
	assert.Equal(suite.T(), "Food is over budget by 12.00 EUR (512.00/500.00 EUR)", over[0].Message)

	assert.Len(suite.T(), suite.notifications("severity=error"), 2)
}

func (suite *TestSuiteStandard) TestNotificationsMarkRead() {
	suite.createCategory(map[string]any{"name": "Food", "maxBudget": "10"})
	suite.createTransaction(expense("Groceries", "Food", "20", "2024-03-04T00:00:00Z"))

	unread := suite.notifications("read=false")
	require.Len(suite.T(), unread, 2)

	r := suite.request(http.MethodPost, unread[0].Links.Read, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.ObjectResponse[v1.Notification]
	test.DecodeResponse(suite.T(), &r, &single)
	assert.True(suite.T(), single.Data.Read)
	assert.Len(suite.T(), suite.notifications("read=false"), 1)

	r = suite.request(http.MethodPost, "http://example.com/v1/notifications/read", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var count v1.CountResponse
	test.DecodeResponse(suite.T(), &r, &count)
	assert.Equal(suite.T(), 1, count.Count)
	assert.Empty(suite.T(), suite.notifications("read=false"))
	assert.Equal(suite.T(), 0, suite.controller.Ledger.Summary(types.Month{}).Unread)
}

func (suite *TestSuiteStandard) TestNotificationMarkReadNotFound() {
	r := suite.request(http.MethodPost, "http://example.com/v1/notifications/7d9c3a71-2f0e-4ab1-9f0e-5c9d1f2e3a40/read", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodOptions, "http://example.com/v1/notifications/7d9c3a71-2f0e-4ab1-9f0e-5c9d1f2e3a40/read", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNotificationsRunChecks() {
	suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": "100"})
	suite.createWishes(map[string]any{"name": "Book", "estimatedPrice": "20"})
	assert.Len(suite.T(), suite.notifications(""), 1)

	r := suite.request(http.MethodPost, "http://example.com/v1/notifications/checks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var raised v1.ListResponse[v1.Notification]
	test.DecodeResponse(suite.T(), &r, &raised)
	require.Len(suite.T(), raised.Data, 1)
	assert.Equal(suite.T(), rules.RuleWishAffordable, raised.Data[0].Rule)

	assert.Len(suite.T(), suite.notifications(""), 2, "notifications are not deduplicated")
}

func (suite *TestSuiteStandard) TestNotificationsNewestFirst() {
	suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": "100"})
	suite.createWishes(map[string]any{"name": "Book", "estimatedPrice": "20"})
	suite.now = suite.now.Add(time.Minute)
	suite.createWishes(map[string]any{"name": "Lamp", "estimatedPrice": "30"})

	notifications := suite.notifications("")
	require.Len(suite.T(), notifications, 3)
	assert.Equal(suite.T(), suite.now, notifications[0].CreatedAt)
}

func (suite *TestSuiteStandard) TestNotificationUpdateAndDelete() {
	suite.createCategory(map[string]any{"name": "Food", "maxBudget": "10"})
	suite.createTransaction(expense("Groceries", "Food", "20", "2024-03-04T00:00:00Z"))
	n := suite.notifications("")[0]

	r := suite.request(http.MethodPatch, n.Links.Self, map[string]any{"read": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ObjectResponse[v1.Notification]
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Read)
	assert.Equal(suite.T(), n.Title, updated.Data.Title)

	r = suite.request(http.MethodPatch, n.Links.Self, map[string]any{"severity": "fatal"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, n.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Len(suite.T(), suite.notifications(""), 1)

	r = suite.request(http.MethodDelete, "http://example.com/v1/notifications", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Empty(suite.T(), suite.notifications(""))
}

func (suite *TestSuiteStandard) TestNotificationsStorageFailure() {
	suite.BreakStorage()

	for _, url := range []string{"http://example.com/v1/notifications/read", "http://example.com/v1/notifications/checks"} {
		r := suite.request(http.MethodPost, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK, http.StatusInternalServerError)
	}

	r := suite.request(http.MethodDelete, "http://example.com/v1/notifications", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
