package handlers

import (
	"net/http"

	"hotelvoice/models"
	"hotelvoice/services/extractor"
	"hotelvoice/utils"

	"github.com/gin-gonic/gin"
)

// BookHandler commits a booking. The channel-manager push inside the
// service is best-effort; this endpoint fails only on invalid input.
func (h *Handler) BookHandler(c *gin.Context) {
	var input models.BookingRequest
	if err := bindArgs(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body",
			"Das habe ich leider nicht verstanden. Bitte wiederholen Sie Ihre Anfrage.")
		return
	}

	base := h.now()
	pd, _, err := extractor.ResolveDate(input.CheckIn, "check_in", base)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	input.CheckIn = pd.Date

	pd, _, err = extractor.ResolveDate(input.CheckOut, "check_out", base)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	input.CheckOut = pd.Date

	b, err := h.Booking.Commit(c.Request.Context(), input)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
