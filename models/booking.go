package models

import "time"

// Booking represents a confirmed booking record. Bookings are ephemeral:
// no datastore exists, the identifier is handed to the caller and pushed
// best-effort to the channel manager.
type Booking struct {
	ID         string    `json:"booking_id"`
	Email      string    `json:"email"`
	CheckIn    string    `json:"check_in"`  // "YYYY-MM-DD"
	CheckOut   string    `json:"check_out"` // "YYYY-MM-DD"
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	BoardType  string    `json:"board_type"`
	Addon      bool      `json:"addon"`
	ChannelRef string    `json:"channel_ref,omitempty"` // provider reference when the push succeeded
	CreatedAt  time.Time `json:"created_at"`
	Spoken     string    `json:"spoken"`
}

// BookingRequest is the input of the commit operation.
type BookingRequest struct {
	Email     string `json:"email"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	BoardType string `json:"board_type"`
	Addon     bool   `json:"addon"`
}
