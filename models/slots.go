package models

// ParsedDate is a calendar date normalized to "YYYY-MM-DD".
type ParsedDate struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	// NeedsConfirmation is set whenever the parser had to guess (weekday
	// inference, year rollover, word-based ordinals, generic fallback). The
	// conversational layer reads this to verbally confirm the value.
	NeedsConfirmation bool     `json:"needs_confirmation"`
	Notes             []string `json:"notes,omitempty"`
}

// Diagnostic note tags attached to ParsedDate.Notes.
const (
	NoteYearRolledForward   = "year_rolled_forward"
	NoteWeekdayInferred     = "weekday_inferred"
	NoteOrdinalOrWordFormat = "ordinal_or_word_format"
	NoteFallbackDateParse   = "fallback_date_parse"
)

// BookingSlots holds the extracted booking parameters of one utterance.
// Adults defaults to 1 and is never below 1; Children defaults to 0 and
// is never negative.
type BookingSlots struct {
	CheckIn  *ParsedDate `json:"check_in"`
	CheckOut *ParsedDate `json:"check_out"`
	Adults   int         `json:"adults"`
	Children int         `json:"children"`
}

// NeedsConfirmation reports whether any extracted date was inferred
// rather than stated explicitly.
func (s *BookingSlots) NeedsConfirmation() bool {
	return (s.CheckIn != nil && s.CheckIn.NeedsConfirmation) ||
		(s.CheckOut != nil && s.CheckOut.NeedsConfirmation)
}

// Notes aggregates the diagnostic tags of both dates, check-in first.
func (s *BookingSlots) Notes() []string {
	var notes []string
	if s.CheckIn != nil {
		notes = append(notes, s.CheckIn.Notes...)
	}
	if s.CheckOut != nil {
		notes = append(notes, s.CheckOut.Notes...)
	}
	return notes
}

// ExtractResult is the wire form of a slot extraction.
type ExtractResult struct {
	CheckIn           *string  `json:"check_in"`
	CheckOut          *string  `json:"check_out"`
	Adults            int      `json:"adults"`
	Children          int      `json:"children"`
	NeedsConfirmation bool     `json:"needs_confirmation"`
	Notes             []string `json:"notes"`
	Source            string   `json:"source,omitempty"` // "rules", "oracle" or "merged"
}
