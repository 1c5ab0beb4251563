package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestShoppingItemsClearPurchased() {
	r := suite.request(http.MethodPost, "http://example.com/v1/shopping-items", []map[string]any{
		{"name": "Oat milk", "price": "1.89"},
		{"name": "Bread", "price": "2.50", "purchased": true},
		{"name": "Coffee", "price": "7.99"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CreateResponse[v1.ShoppingItem]
	test.DecodeResponse(suite.T(), &r, &created)
	milk := created.Data[0].Data

	r = suite.request(http.MethodPatch, milk.Links.Self, map[string]any{"purchased": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/shopping-items?purchased=true", "")
	var list v1.ListResponse[v1.ShoppingItem]
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)

	r = suite.request(http.MethodDelete, "http://example.com/v1/shopping-items", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, "http://example.com/v1/shopping-items?purchased=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var count v1.CountResponse
	test.DecodeResponse(suite.T(), &r, &count)
	assert.Equal(suite.T(), 2, count.Count)

	items := suite.controller.Ledger.ShoppingItems()
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), "Coffee", items[0].Name)
}

func (suite *TestSuiteStandard) TestShoppingItemsOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/shopping-items", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST, DELETE", r.Header().Get("allow"))
}
