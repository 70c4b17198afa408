package availability

import (
	"fmt"

	"hotelvoice/models"
	"hotelvoice/services/speech"
)

func spokenAvailability(checkIn, checkOut string, nights, adults, children int, rooms []models.RoomOffer) string {
	guests := speech.Adults(adults)
	if children > 0 {
		guests += " und " + speech.Children(children)
	}

	roomPhrase := fmt.Sprintf("%d passende Zimmerkategorien", len(rooms))
	if len(rooms) == 1 {
		roomPhrase = "eine passende Zimmerkategorie"
	}

	cheapest := rooms[0]
	for _, r := range rooms[1:] {
		if r.TotalPrice < cheapest.TotalPrice {
			cheapest = r
		}
	}

	return fmt.Sprintf(
		"Für %s habe ich vom %s bis zum %s, also %s, %s gefunden. Am günstigsten ist das %s für insgesamt %s.",
		guests, speech.Date(checkIn), speech.Date(checkOut), speech.Nights(nights),
		roomPhrase, cheapest.Name, speech.Euro(cheapest.TotalPrice),
	)
}
