package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		allow   string
	}{
		{"Get", httputil.OptionsGet, "GET"},
		{"GetPost", httputil.OptionsGetPost, "GET, POST"},
		{"GetPostDelete", httputil.OptionsGetPostDelete, "GET, POST, DELETE"},
		{"GetPatchDelete", httputil.OptionsGetPatchDelete, "GET, PATCH, DELETE"},
		{"GetDelete", httputil.OptionsGetDelete, "GET, DELETE"},
		{"Post", httputil.OptionsPost, "POST"},
		{"Delete", httputil.OptionsDelete, "DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.OPTIONS("/", tt.handler)

			c.Request, _ = http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, tt.allow, w.Header().Get("allow"))
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}
