package handlers

import (
	"net/http"

	"hotelvoice/models"
	"hotelvoice/services/extractor"
	"hotelvoice/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler prices a stay. Quotes do not require a preceding
// availability check.
func (h *Handler) QuoteHandler(c *gin.Context) {
	var input models.QuoteRequest
	if err := bindArgs(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body",
			"Das habe ich leider nicht verstanden. Bitte wiederholen Sie Ihre Anfrage.")
		return
	}

	base := h.now()
	if input.CheckIn != "" {
		pd, _, err := extractor.ResolveDate(input.CheckIn, "check_in", base)
		if err != nil {
			utils.RespondDomainError(c, err)
			return
		}
		input.CheckIn = pd.Date
	}
	if input.CheckOut != "" {
		pd, _, err := extractor.ResolveDate(input.CheckOut, "check_out", base)
		if err != nil {
			utils.RespondDomainError(c, err)
			return
		}
		input.CheckOut = pd.Date
	}

	q, err := h.Quote.Quote(input)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
