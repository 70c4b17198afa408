package routes

import (
	"net/http"
	"time"

	"hotelvoice/config"
	"hotelvoice/handlers"
	"hotelvoice/middleware"
	"hotelvoice/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterToolRoutes registers the voice-platform tool endpoints.
func RegisterToolRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api/tools")
	{
		api.Use(middleware.WebhookAuthMiddleware())
		api.POST("/extract-booking", h.ExtractBookingHandler)
		api.POST("/check-availability", h.CheckAvailabilityHandler)
		api.POST("/quote", h.QuoteHandler)
		api.POST("/book", h.BookHandler)
	}
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/api/rooms", h.ListRoomsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    config.GetEnv(),
			"deps":   utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Webhook-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterToolRoutes(r, h)
	RegisterCatalogRoutes(r, h)
	RegisterHealthRoute(r)
}
