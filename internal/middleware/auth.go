// Package middleware holds the gin middleware for the crop service API.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// APIKeyEnv names the environment variable holding the dashboard API key.
const APIKeyEnv = "FARM_API_KEY"

// APIKeyMiddleware gates the API behind the X-Farm-API-Key header. This is
// the service-side replacement for the dashboard's password screen.
func APIKeyMiddleware() gin.HandlerFunc {
	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "server misconfigured: FARM_API_KEY not set",
			})
		}
	}
	apiKeyBytes := []byte(apiKey)

	return func(c *gin.Context) {
		key := c.GetHeader("X-Farm-API-Key")
		// Constant-time compare to prevent timing attacks.
		if subtle.ConstantTimeCompare([]byte(key), apiKeyBytes) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}
