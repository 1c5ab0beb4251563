package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindData(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		result string
	}{
		{"Success", `{ "name": "Milk" }`, http.StatusOK, "Milk"},
		{"Empty", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Unparseable", `{ "name": "Milk }`, http.StatusBadRequest, httputil.ErrInvalidBody.Error()},
		{"Wrong type", `{ "name": 17 }`, http.StatusBadRequest, "json: cannot unmarshal number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.POST("/", func(c *gin.Context) {
				var data struct {
					Name string `json:"name"`
				}

				if err := httputil.BindData(c, &data); err != nil {
					httputil.NewError(c, http.StatusBadRequest, err)
					return
				}
				c.String(http.StatusOK, data.Name)
			})

			c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.result)
		})
	}
}

func TestBaseURLFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		host    string
	}{
		{"No proxy", nil, "http://example.com"},
		{"Proxy", map[string]string{"x-forwarded-proto": "https", "x-forwarded-host": "fin.example.org"}, "https://fin.example.org"},
		{"Proxy with prefix", map[string]string{"x-forwarded-host": "fin.example.org", "x-forwarded-prefix": "/api/"}, "http://fin.example.org/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.GET("/", func(c *gin.Context) {
				c.String(http.StatusOK, httputil.BaseURL(c))
			})

			c.Request, _ = http.NewRequest(http.MethodGet, "http://example.com/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, tt.host, w.Body.String())
		})
	}
}

func TestBaseURLFromContext(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/", func(c *gin.Context) {
		c.Set(httputil.ContextURL, "https://fin.example.org/api")
		c.String(http.StatusOK, httputil.BaseURL(c))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "http://example.com/", nil)
	c.Request.Header.Set("x-forwarded-host", "proxy.example.org")
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://fin.example.org/api", w.Body.String())
}
