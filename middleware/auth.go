package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotelvoice/config"

	"github.com/gin-gonic/gin"
)

// WebhookAuthMiddleware guards the tool endpoints with the shared secret
// the voice platform sends in X-Webhook-Secret. An empty configured
// secret disables the check for local development.
func WebhookAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.WebhookSecret
		if secret == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid webhook secret"})
			return
		}
		c.Next()
	}
}
