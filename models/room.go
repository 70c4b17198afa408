package models

// RoomType is a static catalog entry. Reference data, never user-mutable.
type RoomType struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	NightlyRate float64  `json:"nightly_rate"`
	MaxGuests   int      `json:"max_guests"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// RoomOffer is a room type priced for a concrete stay.
type RoomOffer struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
}
