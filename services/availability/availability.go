// services/availability/availability.go
package availability

import (
	"fmt"
	"time"

	"hotelvoice/config"
	"hotelvoice/models"
	"hotelvoice/services/speech"
	"hotelvoice/utils"
)

// Service defines the availability engine.
type Service interface {
	Check(checkIn, checkOut string, adults, children int) (*models.AvailabilityResult, error)
}

// Engine is a concrete implementation. Pure computation over the static
// room catalog; safe for unlimited request-level parallelism.
type Engine struct {
	Catalog   []models.RoomType
	MaxNights int
	MaxGuests int

	LongStayDiscountEnabled bool
	LongStayMinNights       int
	LongStayDiscountRate    float64

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewEngine builds an engine from the loaded configuration.
func NewEngine() *Engine {
	return &Engine{
		Catalog:                 config.RoomCatalog,
		MaxNights:               config.AppConfig.MaxNights,
		MaxGuests:               config.AppConfig.MaxGuests,
		LongStayDiscountEnabled: config.AppConfig.LongStayDiscountEnabled,
		LongStayMinNights:       config.AppConfig.LongStayMinNights,
		LongStayDiscountRate:    config.AppConfig.LongStayDiscountRate,
		Now:                     time.Now,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Check validates the requested stay and returns the qualifying rooms.
// Rules are checked in a fixed order and the first violated rule is the
// failure reason.
func (e *Engine) Check(checkIn, checkOut string, adults, children int) (*models.AvailabilityResult, error) {
	if adults < 1 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}

	in, errIn := utils.ParseISODate(checkIn)
	_, errOut := utils.ParseISODate(checkOut)
	if checkIn == "" || checkOut == "" || errIn != nil || errOut != nil {
		return nil, &models.ValidationError{
			Code:      models.CodeMissingDates,
			Message:   "check_in and check_out are required",
			SpokenMsg: "Mir fehlen noch die Reisedaten. Bitte nennen Sie mir An- und Abreisedatum.",
		}
	}

	nights, _ := utils.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, &models.BusinessRuleViolation{
			Code:      models.CodeCheckoutBeforeCheckin,
			Message:   "checkout must be after checkin",
			SpokenMsg: "Das Abreisedatum muss nach dem Anreisedatum liegen. Bitte nennen Sie mir die Daten noch einmal.",
		}
	}

	if nights > e.MaxNights {
		return nil, &models.BusinessRuleViolation{
			Code:      models.CodeMaxNightsExceeded,
			Message:   fmt.Sprintf("stay of %d nights exceeds the maximum of %d", nights, e.MaxNights),
			SpokenMsg: fmt.Sprintf("Ein Aufenthalt von %s ist leider nicht möglich. Wir nehmen Buchungen bis %s an.", speech.Nights(nights), speech.Nights(e.MaxNights)),
		}
	}

	today := midnight(e.now())
	if in.Before(today) {
		return nil, &models.BusinessRuleViolation{
			Code:      models.CodeCheckinInPast,
			Message:   "check-in date is in the past",
			SpokenMsg: "Das Anreisedatum liegt leider in der Vergangenheit. Bitte nennen Sie mir ein Datum ab heute.",
		}
	}

	totalGuests := adults + children
	if totalGuests > e.MaxGuests {
		return nil, &models.BusinessRuleViolation{
			Code:      models.CodeMaxGuestsExceeded,
			Message:   fmt.Sprintf("%d guests exceed the maximum of %d", totalGuests, e.MaxGuests),
			SpokenMsg: fmt.Sprintf("Für %s haben wir leider keine Kapazität. Wir können höchstens %s aufnehmen.", speech.Guests(totalGuests), speech.Guests(e.MaxGuests)),
		}
	}

	var rooms []models.RoomOffer
	for _, rt := range e.Catalog {
		if rt.MaxGuests < totalGuests {
			continue
		}
		total := rt.NightlyRate * float64(nights)
		if e.LongStayDiscountEnabled && nights >= e.LongStayMinNights {
			total *= 1 - e.LongStayDiscountRate
		}
		rooms = append(rooms, models.RoomOffer{
			Code:          rt.Code,
			Name:          rt.Name,
			PricePerNight: rt.NightlyRate,
			TotalPrice:    utils.Round2(total),
		})
	}

	if len(rooms) == 0 {
		return nil, &models.BusinessRuleViolation{
			Code:      models.CodeNoRoomsAvailable,
			Message:   fmt.Sprintf("no room type accommodates %d guests", totalGuests),
			SpokenMsg: fmt.Sprintf("Leider haben wir kein Zimmer für %s frei.", speech.Guests(totalGuests)),
		}
	}

	return &models.AvailabilityResult{
		Available:   true,
		Nights:      nights,
		TotalGuests: totalGuests,
		Rooms:       rooms,
		Spoken:      spokenAvailability(checkIn, checkOut, nights, adults, children, rooms),
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
