package handlers

import (
	"net/http"

	"hotelvoice/config"

	"github.com/gin-gonic/gin"
)

// ListRoomsHandler returns the static room catalog.
func (h *Handler) ListRoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": config.RoomCatalog})
}
