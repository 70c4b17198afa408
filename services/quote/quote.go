// services/quote/quote.go
package quote

import (
	"fmt"

	"hotelvoice/config"
	"hotelvoice/models"
	"hotelvoice/services/extractor"
	"hotelvoice/services/speech"
	"hotelvoice/utils"
)

// Service defines the quote engine.
type Service interface {
	Quote(req models.QuoteRequest) (*models.Quote, error)
}

// Engine computes price breakdowns. Independent of room capacity: a quote
// can be requested without an availability check having occurred.
type Engine struct {
	BaseNightlyRate  float64
	AddonRate        float64
	ExchangeRate     float64
	BoardRates       map[string]float64
	DefaultBoardType string
}

// NewEngine builds an engine from the loaded configuration.
func NewEngine() *Engine {
	return &Engine{
		BaseNightlyRate:  config.AppConfig.BaseNightlyRate,
		AddonRate:        config.AppConfig.AddonRate,
		ExchangeRate:     config.AppConfig.ExchangeRate,
		BoardRates:       config.BoardRates,
		DefaultBoardType: config.DefaultBoardType,
	}
}

// Quote prices a stay. The full breakdown is returned for transparency:
// the total is spoken to a caller who may ask how it was computed.
func (e *Engine) Quote(req models.QuoteRequest) (*models.Quote, error) {
	if req.CheckIn == "" || req.CheckOut == "" {
		return nil, invalidDates()
	}
	nights, err := utils.NightsBetween(req.CheckIn, req.CheckOut)
	if err != nil || nights <= 0 {
		return nil, invalidDates()
	}

	boardType := extractor.Normalize(req.BoardType)
	boardAdd, ok := e.BoardRates[boardType]
	if !ok {
		boardType = e.DefaultBoardType
		boardAdd = e.BoardRates[boardType]
	}

	addonAdd := 0.0
	if req.Addon {
		addonAdd = e.AddonRate
	}

	totalPrimary := utils.Round2(float64(nights)*(e.BaseNightlyRate+boardAdd) + addonAdd)
	// The secondary currency has no minor units; round to whole amounts.
	totalSecondary := float64(int64(totalPrimary*e.ExchangeRate + 0.5))

	q := &models.Quote{
		TotalPrimary:   totalPrimary,
		TotalSecondary: totalSecondary,
		FxRate:         e.ExchangeRate,
		Nights:         nights,
		Breakdown: models.QuoteBreakdown{
			BasePerNight: e.BaseNightlyRate,
			BoardAdd:     boardAdd,
			AddonAdd:     addonAdd,
			BoardType:    boardType,
			Adults:       req.Adults,
			Children:     req.Children,
		},
	}
	q.Spoken = spokenQuote(nights, boardType, req.Addon, totalPrimary)
	return q, nil
}

func invalidDates() error {
	return &models.ValidationError{
		Code:      models.CodeInvalidDates,
		Message:   "invalid or missing dates",
		SpokenMsg: "Für ein Angebot brauche ich gültige An- und Abreisedaten. Bitte nennen Sie mir beide Daten.",
	}
}

var spokenBoardNames = map[string]string{
	"ohne verpflegung": "ohne Verpflegung",
	"keine":            "ohne Verpflegung",
	"fruehstueck":      "mit Frühstück",
	"halbpension":      "mit Halbpension",
	"vollpension":      "mit Vollpension",
}

func spokenQuote(nights int, boardType string, addon bool, total float64) string {
	board, ok := spokenBoardNames[boardType]
	if !ok {
		board = "mit Frühstück"
	}
	s := fmt.Sprintf("%s %s kosten insgesamt %s", speech.Nights(nights), board, speech.Euro(total))
	if addon {
		s += ", inklusive Wellness-Paket"
	}
	return s + "."
}
