package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummary() {
	suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": "2500", "date": "2024-03-01T00:00:00Z"})
	suite.createTransaction(map[string]any{"kind": "expense", "description": "Rent", "amount": "800", "fixed": true, "date": "2024-03-01T00:00:00Z"})
	suite.createTransaction(expense("Groceries", "Food", "200", "2024-02-20T00:00:00Z"))

	r := suite.request(http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var all v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &all)
	assert.Nil(suite.T(), all.Month)
	assert.True(suite.T(), decimal.NewFromInt(2500).Equal(all.Data.Income))
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(all.Data.Expense))
	assert.True(suite.T(), decimal.NewFromInt(1500).Equal(all.Data.Balance))
	assert.True(suite.T(), decimal.NewFromInt(800).Equal(all.Data.FixedExpenses))

	r = suite.request(http.MethodGet, "http://example.com/v1/summary?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var february v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &february)
	assert.Equal(suite.T(), "2024-02", february.Month.String())
	assert.True(suite.T(), february.Data.Income.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(-200).Equal(february.Data.Balance))
}

func (suite *TestSuiteStandard) TestSummaryInvalidMonth() {
	r := suite.request(http.MethodGet, "http://example.com/v1/summary?month=2024-13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
