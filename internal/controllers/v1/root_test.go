package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGet() {
	r := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Transactions:      "http://example.com/v1/transactions",
		RecurringIncomes:  "http://example.com/v1/recurring-incomes",
		RecurringExpenses: "http://example.com/v1/recurring-expenses",
		Categories:        "http://example.com/v1/categories",
		Wishes:            "http://example.com/v1/wishes",
		ShoppingItems:     "http://example.com/v1/shopping-items",
		Notifications:     "http://example.com/v1/notifications",
		Summary:           "http://example.com/v1/summary",
		Events:            "http://example.com/v1/events",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))
	suite.createCategory(map[string]any{"name": "Food", "maxBudget": "50"})
	assert.NotEmpty(suite.T(), suite.controller.Ledger.Notifications())

	r := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	state := suite.controller.Ledger.State()
	assert.Empty(suite.T(), state.Transactions)
	assert.Empty(suite.T(), state.Categories)
	assert.Empty(suite.T(), state.Notifications)
}

func (suite *TestSuiteStandard) TestCleanupNoConfirmation() {
	suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))

	for _, url := range []string{"http://example.com/v1", "http://example.com/v1?confirm=yes"} {
		r := suite.request(http.MethodDelete, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		assert.Contains(suite.T(), r.Body.String(), "yes-please-delete-everything")
	}

	assert.Len(suite.T(), suite.controller.Ledger.Transactions(), 1)
}

func (suite *TestSuiteStandard) TestCleanupStorageFailure() {
	suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))
	suite.BreakStorage()

	r := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	assert.Len(suite.T(), suite.controller.Ledger.Transactions(), 1)
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := suite.request(http.MethodPut, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
