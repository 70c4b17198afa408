package handlers

import (
	"net/http"

	"hotelvoice/models"
	"hotelvoice/services/extractor"
	"hotelvoice/utils"

	"github.com/gin-gonic/gin"
)

// CheckAvailabilityHandler validates a stay against the room catalog.
// Dates may arrive already normalized or as raw utterance text; the meta
// envelope records which was the case per field.
func (h *Handler) CheckAvailabilityHandler(c *gin.Context) {
	var input struct {
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
		Adults   int    `json:"adults"`
		Children int    `json:"children"`
	}
	if err := bindArgs(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body",
			"Das habe ich leider nicht verstanden. Bitte wiederholen Sie Ihre Anfrage.")
		return
	}

	base := h.now()
	checkIn, inParsed, err := extractor.ResolveDate(input.CheckIn, "check_in", base)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	checkOut, outParsed, err := extractor.ResolveDate(input.CheckOut, "check_out", base)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	result, err := h.Availability.Check(checkIn.Date, checkOut.Date, input.Adults, input.Children)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	var notes []string
	notes = append(notes, checkIn.Notes...)
	notes = append(notes, checkOut.Notes...)
	result.Meta = &models.SlotMeta{
		CheckInParsed:     inParsed,
		CheckOutParsed:    outParsed,
		NeedsConfirmation: checkIn.NeedsConfirmation || checkOut.NeedsConfirmation,
		Notes:             notes,
	}

	c.JSON(http.StatusOK, result)
}
