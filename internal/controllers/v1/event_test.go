package v1_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/router"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEventsStream() {
	u, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(u)
	require.Nil(suite.T(), err)
	defer teardown()
	router.AttachRoutes(suite.controller, r.Group("/"))

	server := httptest.NewServer(r)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/events", nil)
	resp, err := server.Client().Do(req)
	require.Nil(suite.T(), err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(suite.T(), "text/event-stream", resp.Header.Get("Content-Type"))

	tr, err := suite.controller.Ledger.CreateTransaction(context.Background(), models.Transaction{
		Kind:        models.KindExpense,
		Description: "Groceries",
		Amount:      decimal.NewFromInt(12),
	})
	require.Nil(suite.T(), err)

	var event string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := strings.CutPrefix(line, "event:"); ok {
			event = name
		}

		if data, ok := strings.CutPrefix(line, "data:"); ok {
			var change events.Change
			require.Nil(suite.T(), json.Unmarshal([]byte(data), &change))

			assert.Equal(suite.T(), "change", event)
			assert.Equal(suite.T(), models.Transactions, change.Collection)
			assert.Equal(suite.T(), events.OpSave, change.Op)
			assert.Equal(suite.T(), tr.ID.String(), change.ID)
			assert.Equal(suite.T(), "memory", change.Backend)
			assert.False(suite.T(), change.Fallback)
			return
		}
	}

	suite.T().Fatalf("stream ended without a change: %v", scanner.Err())
}

func (suite *TestSuiteStandard) TestEventsOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/events", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
