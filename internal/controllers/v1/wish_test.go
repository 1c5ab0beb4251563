package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createWishes(wishes ...map[string]any) []v1.Wish {
	r := suite.request(http.MethodPost, "http://example.com/v1/wishes", wishes)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CreateResponse[v1.Wish]
	test.DecodeResponse(suite.T(), &r, &response)

	var created []v1.Wish
	for _, w := range response.Data {
		created = append(created, *w.Data)
	}
	return created
}

func (suite *TestSuiteStandard) TestWishesAffordable() {
	suite.createTransaction(map[string]any{"kind": "income", "description": "Salary", "amount": "600"})
	bike := suite.createWishes(map[string]any{"name": "Bike", "estimatedPrice": "500"})[0]

	assert.Equal(suite.T(), models.PriorityMedium, bike.Priority)
	assert.Equal(suite.T(), models.StatusPending, bike.Status)

	r := suite.request(http.MethodGet, "http://example.com/v1/notifications?rule=wish.affordable", "")
	var list v1.ListResponse[v1.Notification]
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), models.SeveritySuccess, list.Data[0].Severity)
	assert.Equal(suite.T(), "You can afford Bike (500.00 EUR) with your balance of 600.00 EUR", list.Data[0].Message)
}

func (suite *TestSuiteStandard) TestWishesList() {
	suite.createWishes(
		map[string]any{"name": "Bike", "priority": "high", "category": "Hobbies"},
		map[string]any{"name": "Bike lights", "status": "saving", "category": "Hobbies"},
		map[string]any{"name": "Couch", "status": "achieved"},
	)

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Bike", "Bike lights", "Couch"}},
		{"priority=high", []string{"Bike"}},
		{"status=saving", []string{"Bike lights"}},
		{"category=Hobbies", []string{"Bike", "Bike lights"}},
		{"search=BIKE", []string{"Bike", "Bike lights"}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodGet, "http://example.com/v1/wishes?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ListResponse[v1.Wish]
		test.DecodeResponse(suite.T(), &r, &response)

		names := []string{}
		for _, w := range response.Data {
			names = append(names, w.Name)
		}
		assert.Equal(suite.T(), tt.names, names, tt.query)
	}
}

func (suite *TestSuiteStandard) TestWishUpdateInvalid() {
	bike := suite.createWishes(map[string]any{"name": "Bike"})[0]

	r := suite.request(http.MethodPatch, bike.Links.Self, map[string]any{"priority": "urgent"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrWishPriorityInvalid.Error())
}
