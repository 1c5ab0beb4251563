package httputil

import "github.com/gin-gonic/gin"

// ContextURL is the key under which the configured API URL is stored
// in the gin context.
const ContextURL = "fintrack-api-url"

// BaseURL returns the API URL stored by the router middleware. Without
// it, the URL is derived from the request.
func BaseURL(c *gin.Context) string {
	if url := c.GetString(ContextURL); url != "" {
		return url
	}

	return RequestHost(c)
}
