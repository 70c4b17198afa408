package handlers

import (
	"net/http"

	"hotelvoice/models"
	"hotelvoice/services/extractor"
	"hotelvoice/services/oracle"
	"hotelvoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractBookingHandler converts a free-form German utterance into
// booking slots. The rule-based extractor always runs; when an oracle is
// configured its answer is merged in field by field. An oracle failure is
// logged and absorbed — extraction has zero network dependency.
func (h *Handler) ExtractBookingHandler(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := bindArgs(c, &input); err != nil || input.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "text is required",
			"Das habe ich leider nicht verstanden. Bitte wiederholen Sie Ihre Anfrage.")
		return
	}

	base := h.now()
	slots := extractor.ExtractSlots(input.Text, base)
	source := "rules"

	if h.Oracle != nil {
		oracleSlots, err := h.Oracle.ExtractSlots(c.Request.Context(), input.Text)
		if err != nil {
			zap.L().Warn("slot oracle unavailable, using rule-based extraction", zap.Error(err))
		} else {
			slots = oracle.Merge(slots, oracleSlots)
			source = "merged"
		}
	}

	c.JSON(http.StatusOK, toExtractResult(slots, source))
}

func toExtractResult(slots *models.BookingSlots, source string) models.ExtractResult {
	res := models.ExtractResult{
		Adults:            slots.Adults,
		Children:          slots.Children,
		NeedsConfirmation: slots.NeedsConfirmation(),
		Notes:             slots.Notes(),
		Source:            source,
	}
	if res.Notes == nil {
		res.Notes = []string{}
	}
	if slots.CheckIn != nil {
		res.CheckIn = &slots.CheckIn.Date
	}
	if slots.CheckOut != nil {
		res.CheckOut = &slots.CheckOut.Date
	}
	return res
}
