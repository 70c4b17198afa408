package models

// QuoteBreakdown itemizes a quote so the voice agent can answer
// follow-up questions about how the total was computed.
type QuoteBreakdown struct {
	BasePerNight float64 `json:"base_per_night"`
	BoardAdd     float64 `json:"board_add"`
	AddonAdd     float64 `json:"addon_add"`
	BoardType    string  `json:"board_type"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
}

// Quote is a priced stay. TotalSecondary is rounded to whole units; the
// secondary currency has no minor units in this model.
type Quote struct {
	TotalPrimary   float64        `json:"total_primary"`
	TotalSecondary float64        `json:"total_secondary"`
	FxRate         float64        `json:"fx_rate"`
	Nights         int            `json:"nights"`
	Breakdown      QuoteBreakdown `json:"breakdown"`
	Spoken         string         `json:"spoken"`
}

// QuoteRequest is the input of the quote engine.
type QuoteRequest struct {
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	BoardType string `json:"board_type"`
	Addon     bool   `json:"addon"`
}
