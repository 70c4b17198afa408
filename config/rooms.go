package config

import "hotelvoice/models"

// RoomCatalog is the static room-type inventory. It is reference data:
// built once at process start, never mutated, read concurrently by all
// request handlers.
var RoomCatalog = []models.RoomType{
	{
		Code:        "EZ",
		Name:        "Einzelzimmer",
		NightlyRate: 75.0,
		MaxGuests:   1,
		Description: "Gemütliches Einzelzimmer mit Blick in den Garten",
		Amenities:   []string{"WLAN", "TV", "Dusche"},
	},
	{
		Code:        "DZ",
		Name:        "Doppelzimmer",
		NightlyRate: 90.0,
		MaxGuests:   2,
		Description: "Klassisches Doppelzimmer mit Balkon",
		Amenities:   []string{"WLAN", "TV", "Balkon", "Badewanne"},
	},
	{
		Code:        "KOM",
		Name:        "Komfort-Doppelzimmer",
		NightlyRate: 110.0,
		MaxGuests:   3,
		Description: "Geräumiges Doppelzimmer mit Aufbettungsmöglichkeit",
		Amenities:   []string{"WLAN", "TV", "Balkon", "Minibar", "Klimaanlage"},
	},
	{
		Code:        "FAM",
		Name:        "Familienzimmer",
		NightlyRate: 130.0,
		MaxGuests:   4,
		Description: "Familienzimmer mit separatem Kinderschlafbereich",
		Amenities:   []string{"WLAN", "TV", "Kinderbett", "Kühlschrank"},
	},
	{
		Code:        "SUI",
		Name:        "Suite",
		NightlyRate: 180.0,
		MaxGuests:   6,
		Description: "Großzügige Suite mit Wohnbereich und Panoramablick",
		Amenities:   []string{"WLAN", "TV", "Wohnbereich", "Minibar", "Klimaanlage", "Kaffeemaschine"},
	},
}

// BoardRates maps a normalized board-type name (lowercased, umlauts
// expanded) to its nightly surcharge. Unknown board types fall back to
// the breakfast rate, see DefaultBoardType.
var BoardRates = map[string]float64{
	"ohne verpflegung": 0.0,
	"keine":            0.0,
	"fruehstueck":      12.0,
	"halbpension":      19.0,
	"vollpension":      28.0,
}

// DefaultBoardType is applied when the requested board type is unknown.
const DefaultBoardType = "fruehstueck"
