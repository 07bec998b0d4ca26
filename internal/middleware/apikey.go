package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth gates mutating item routes behind the X-API-Key header.
// A missing header is unauthorized; a mismatching one is forbidden.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			c.Abort()
			return
		}

		if key != apiKey {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
