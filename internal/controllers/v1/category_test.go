package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesSpent() {
	category := suite.createCategory(map[string]any{"name": "Food", "maxBudget": "500", "spent": "9999"})
	assert.True(suite.T(), category.Spent.IsZero(), "spent is derived and cannot be set")
	assert.Equal(suite.T(), models.DefaultCategoryColor, category.Color)
	assert.Equal(suite.T(), "http://example.com/v1/transactions?category=Food", category.Links.Transactions)

	suite.createTransaction(expense("Groceries", "Food", "200", "2024-03-04T00:00:00Z"))
	suite.createTransaction(expense("Restaurant", "Food", "175", "2024-03-05T00:00:00Z"))
	suite.createTransaction(map[string]any{"kind": "income", "category": "Food", "description": "Refund", "amount": "20"})

	r := suite.request(http.MethodGet, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ObjectResponse[v1.Category]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(375).Equal(response.Data.Spent), "spent is %s", response.Data.Spent)
}

func (suite *TestSuiteStandard) TestCategoriesNameUnique() {
	suite.createCategory(map[string]any{"name": "Food"})
	other := suite.createCategory(map[string]any{"name": "Travel"})

	r := suite.request(http.MethodPost, "http://example.com/v1/categories", []map[string]any{{"name": " Food "}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrCategoryNameNotUnique.Error())

	r = suite.request(http.MethodPatch, other.Links.Self, map[string]any{"name": "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, other.Links.Self, map[string]any{"color": "#22c55e"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	suite.createCategory(map[string]any{"name": "Food"})
	suite.createCategory(map[string]any{"name": "Fast Food"})
	suite.createCategory(map[string]any{"name": "Travel"})

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Food", "Fast Food", "Travel"}},
		{"name=Food", []string{"Food"}},
		{"search=food", []string{"Food", "Fast Food"}},
		{"limit=1&offset=2", []string{"Travel"}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodGet, "http://example.com/v1/categories?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ListResponse[v1.Category]
		test.DecodeResponse(suite.T(), &r, &response)

		names := []string{}
		for _, c := range response.Data {
			names = append(names, c.Name)
		}
		assert.Equal(suite.T(), tt.names, names, tt.query)
	}
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createCategory(map[string]any{"name": "Food"})

	r := suite.request(http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
