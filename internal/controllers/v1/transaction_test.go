package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expense(description, category, amount, date string) map[string]any {
	return map[string]any{
		"kind":        "expense",
		"description": description,
		"category":    category,
		"amount":      amount,
		"date":        date,
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tr := suite.createTransaction(expense("Weekly groceries", "Food", "42.17", "2024-03-05T10:00:00Z"))

	assert.Equal(suite.T(), models.KindExpense, tr.Kind)
	assert.True(suite.T(), decimal.RequireFromString("42.17").Equal(tr.Amount))
	assert.Equal(suite.T(), suite.now, tr.CreatedAt)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", tr.ID), tr.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultsDate() {
	tr := suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": 2500})
	assert.Equal(suite.T(), suite.now, tr.Date)
}

func (suite *TestSuiteStandard) TestTransactionsCreatePartialFailure() {
	response := suite.createTransactions(http.StatusBadRequest,
		expense("Rent", "Housing", "800", "2024-03-01T00:00:00Z"),
		map[string]any{"kind": "gift", "description": "Flowers"},
		expense("", "Food", "3", "2024-03-01T00:00:00Z"),
	)

	assert.Len(suite.T(), response.Data, 3)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.Equal(suite.T(), models.ErrTransactionKindInvalid.Error(), *response.Data[1].Error)
	assert.Equal(suite.T(), "description is required", *response.Data[2].Error)
	assert.Len(suite.T(), suite.controller.Ledger.Transactions(), 1)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Empty", "", "the request body must not be empty"},
		{"Broken JSON", `[{"kind": "expense"`, "invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CreateResponse[v1.Transaction]
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.createTransaction(expense("Rent March", "Housing", "800", "2024-03-01T00:00:00Z"))
	suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))
	suite.createTransaction(expense("Rent February", "Housing", "800", "2024-02-01T00:00:00Z"))
	suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": "2500", "fixed": true, "date": "2024-02-28T00:00:00Z", "notes": "Monthly salary"})

	tests := []struct {
		query        string
		descriptions []string
	}{
		{"", []string{"Groceries", "Rent March", "Salary", "Rent February"}},
		{"kind=income", []string{"Salary"}},
		{"category=Housing", []string{"Rent March", "Rent February"}},
		{"fixed=false", []string{"Groceries", "Rent March", "Rent February"}},
		{"month=2024-02", []string{"Salary", "Rent February"}},
		{"description=rent*", []string{"Rent March", "Rent February"}},
		{"description=*march", []string{"Rent March"}},
		{"search=monthly", []string{"Salary"}},
		{"amountMoreOrEqual=100&amountLessOrEqual=1000", []string{"Rent March", "Rent February"}},
		{"limit=2", []string{"Groceries", "Rent March"}},
		{"offset=3", []string{"Rent February"}},
		{"offset=1&limit=1", []string{"Rent March"}},
		{"limit=-1&kind=expense", []string{"Groceries", "Rent March", "Rent February"}},
		{"offset=10", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ListResponse[v1.Transaction]
			test.DecodeResponse(t, &r, &response)

			descriptions := []string{}
			for _, tr := range response.Data {
				descriptions = append(descriptions, tr.Description)
			}
			assert.Equal(t, tt.descriptions, descriptions)
			assert.Equal(t, len(tt.descriptions), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListZeroAmount() {
	suite.createTransaction(expense("Rent", "Housing", "800", "2024-03-01T00:00:00Z"))
	suite.createTransaction(map[string]any{"kind": "income", "description": "Voucher", "amount": "0", "date": "2024-03-02T00:00:00Z"})

	tests := []struct {
		query        string
		descriptions []string
	}{
		{"amountLessOrEqual=0", []string{"Voucher"}},
		{"amountMoreOrEqual=0", []string{"Voucher", "Rent"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ListResponse[v1.Transaction]
			test.DecodeResponse(t, &r, &response)

			descriptions := []string{}
			for _, tr := range response.Data {
				descriptions = append(descriptions, tr.Description)
			}
			assert.Equal(t, tt.descriptions, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListPagination() {
	for i := range 3 {
		suite.createTransaction(expense(fmt.Sprintf("Coffee %d", i), "Food", "3", "2024-03-01T00:00:00Z"))
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ListResponse[v1.Transaction]
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Pagination{Count: 1, Offset: 1, Limit: 1, Total: 3}, *response.Pagination)
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidFilter() {
	for _, query := range []string{"month=March", "offset=-1", "fixed=maybe"} {
		r := suite.request(http.MethodGet, "http://example.com/v1/transactions?"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	tr := suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))

	r := suite.request(http.MethodGet, tr.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ObjectResponse[v1.Transaction]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), tr.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionGetErrors() {
	tests := []struct {
		id     string
		status int
		err    string
	}{
		{"not-a-uuid", http.StatusBadRequest, "the specified resource ID is not a valid UUID"},
		{"d430d7c3-d14c-4712-9336-ee56965a6673", http.StatusNotFound, "there is no Transaction matching your query"},
	}

	for _, tt := range tests {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
			r := suite.request(method, "http://example.com/v1/transactions/"+tt.id, `{}`)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			assert.Contains(suite.T(), r.Body.String(), tt.err, "%s %s", method, tt.id)
		}
	}
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	tr := suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))
	suite.now = suite.now.Add(time.Hour)

	r := suite.request(http.MethodPatch, tr.Links.Self, map[string]any{"amount": "65.20", "notes": "  Forgot the milk "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ObjectResponse[v1.Transaction]
	test.DecodeResponse(suite.T(), &r, &response)

	updated := response.Data
	assert.True(suite.T(), decimal.RequireFromString("65.20").Equal(updated.Amount))
	assert.Equal(suite.T(), "Forgot the milk", updated.Notes)
	assert.Equal(suite.T(), "Groceries", updated.Description, "fields not in the body must keep their value")
	assert.Equal(suite.T(), tr.CreatedAt, updated.CreatedAt)
	assert.Equal(suite.T(), suite.now, updated.UpdatedAt)
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalid() {
	tr := suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))

	r := suite.request(http.MethodPatch, tr.Links.Self, map[string]any{"amount": "-1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrAmountNegative.Error())

	r = suite.request(http.MethodPatch, tr.Links.Self, `{"amount": false}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	tr := suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))

	r := suite.request(http.MethodDelete, tr.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, tr.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsStorageFailure() {
	suite.BreakStorage()

	response := suite.createTransactions(http.StatusInternalServerError, expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrGeneral.Error())
	assert.Len(suite.T(), suite.controller.Ledger.Transactions(), 0)
}

func (suite *TestSuiteStandard) TestTransactionOptions() {
	tr := suite.createTransaction(expense("Groceries", "Food", "60", "2024-03-04T00:00:00Z"))

	r := suite.request(http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, tr.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", r.Header().Get("allow"))
}
