package models

// AvailabilityResult is the outcome of an availability check.
type AvailabilityResult struct {
	Available   bool        `json:"available"`
	Nights      int         `json:"nights"`
	TotalGuests int         `json:"total_guests"`
	Rooms       []RoomOffer `json:"rooms"`
	Spoken      string      `json:"spoken"`
	Meta        *SlotMeta   `json:"meta,omitempty"`
}

// SlotMeta records how the input slots were obtained: which fields were
// parsed out of natural language versus supplied already normalized, and
// whether any parsed date still needs verbal confirmation.
type SlotMeta struct {
	CheckInParsed     bool     `json:"check_in_parsed"`
	CheckOutParsed    bool     `json:"check_out_parsed"`
	NeedsConfirmation bool     `json:"needs_confirmation"`
	Notes             []string `json:"notes,omitempty"`
}
