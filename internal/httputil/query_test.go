package httputil_test

import (
	"net/url"
	"testing"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/stretchr/testify/assert"
)

func TestGetURLFields(t *testing.T) {
	url, _ := url.Parse("http://example.com/v1/transactions?category=Food&fixed=false&description=&limit=3")

	queryFields, setFields := httputil.GetURLFields(url, struct {
		Kind        string `form:"kind"`
		Category    string `form:"category"`
		Fixed       bool   `form:"fixed"`
		Description string `form:"description" filterField:"false"`
		Limit       int    `form:"limit" filterField:"false"`
		Internal    string
	}{})

	assert.Equal(t, []string{"Category", "Fixed"}, queryFields)
	assert.Equal(t, []string{"Category", "Fixed", "Description", "Limit"}, setFields)
}

func TestGetURLFieldsPointer(t *testing.T) {
	url, _ := url.Parse("http://example.com/v1/wishes?status=pending")

	type filter struct {
		Status string `form:"status"`
	}

	queryFields, setFields := httputil.GetURLFields(url, &filter{})
	assert.Equal(t, []string{"Status"}, queryFields)
	assert.Equal(t, []string{"Status"}, setFields)
}

func TestGetURLFieldsEmbedded(t *testing.T) {
	url, _ := url.Parse("http://example.com/v1/recurring-incomes?active=true&limit=-1")

	type common struct {
		Active bool `form:"active"`
		Limit  int  `form:"limit" filterField:"false"`
	}

	type filter struct {
		common
		Name string `form:"name"`
	}

	queryFields, setFields := httputil.GetURLFields(url, filter{})
	assert.Equal(t, []string{"Active"}, queryFields)
	assert.Equal(t, []string{"Active", "Limit"}, setFields)
}
