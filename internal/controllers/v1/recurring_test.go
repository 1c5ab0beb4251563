package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecurringIncomes() {
	r := suite.request(http.MethodPost, "http://example.com/v1/recurring-incomes", []map[string]any{
		{"name": "Salary", "amount": "2500", "chargeDay": 25, "active": true},
		{"name": "Side job", "amount": "300", "chargeDay": 1, "active": false},
		{"name": "Broken", "chargeDay": 32},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var created v1.CreateResponse[v1.RecurringIncome]
	test.DecodeResponse(suite.T(), &r, &created)
	require.Len(suite.T(), created.Data, 3)
	assert.Equal(suite.T(), models.ErrChargeDayInvalid.Error(), *created.Data[2].Error)

	salary := created.Data[0].Data
	assert.Equal(suite.T(), "http://example.com/v1/recurring-incomes/"+salary.ID.String(), salary.Links.Self)

	r = suite.request(http.MethodGet, "http://example.com/v1/recurring-incomes?active=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ListResponse[v1.RecurringIncome]
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "Salary", list.Data[0].Name)

	r = suite.request(http.MethodPatch, salary.Links.Self, map[string]any{"active": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/recurring-incomes?active=true", "")
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestRecurringExpenseDueReminder() {
	r := suite.request(http.MethodPost, "http://example.com/v1/recurring-expenses", []map[string]any{
		{"name": "Netflix", "amount": "12.99", "chargeDay": 15, "active": true, "cancellationUrl": "https://example.com/cancel"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CreateResponse[v1.RecurringExpense]
	test.DecodeResponse(suite.T(), &r, &created)
	netflix := created.Data[0].Data
	assert.Equal(suite.T(), "https://example.com/cancel", netflix.CancellationURL)

	notifications := suite.controller.Ledger.Notifications()
	require.Len(suite.T(), notifications, 1)
	assert.Equal(suite.T(), "Payment due in 7 days", notifications[0].Title)
	assert.Equal(suite.T(), netflix.ID, *notifications[0].Target)

	r = suite.request(http.MethodGet, "http://example.com/v1/recurring-expenses?name=Netflix", "")
	var list v1.ListResponse[v1.RecurringExpense]
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = suite.request(http.MethodDelete, netflix.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
