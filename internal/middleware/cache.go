package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NoStore disables HTTP caching. Every view renders live store state; a
// cached response would show a stale session.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", "no-cache, private, must-revalidate")
		} else {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
