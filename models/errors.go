package models

import "fmt"

// Machine-readable failure codes carried by BusinessRuleViolation and
// ValidationError.
const (
	CodeMissingDates          = "MISSING_DATES"
	CodeCheckoutBeforeCheckin = "CHECKOUT_BEFORE_CHECKIN"
	CodeMaxNightsExceeded     = "MAX_NIGHTS_EXCEEDED"
	CodeCheckinInPast         = "CHECKIN_IN_PAST"
	CodeMaxGuestsExceeded     = "MAX_GUESTS_EXCEEDED"
	CodeNoRoomsAvailable      = "NO_ROOMS_AVAILABLE"
	CodeInvalidDates          = "invalid_dates"
	CodeInvalidEmail          = "invalid_email"
)

// DateParseError reports an utterance the extractor could not resolve.
// Retryable by rephrasing.
type DateParseError struct {
	Raw   string // original input text
	Field string // "check_in" or "check_out", used in messages only
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("could not parse %s date from %q", e.Field, e.Raw)
}

// Spoken returns a German sentence suggesting usable formats.
func (e *DateParseError) Spoken() string {
	return fmt.Sprintf("Das Datum für %s habe ich leider nicht verstanden. Bitte nennen Sie es zum Beispiel als '22. Oktober' oder '22.10.'.", germanField(e.Field))
}

func germanField(field string) string {
	switch field {
	case "check_in":
		return "die Anreise"
	case "check_out":
		return "die Abreise"
	default:
		return "das gewünschte Datum"
	}
}

// ValidationError marks structurally invalid input: bad email, missing
// required field. Not retryable without fixing the input.
type ValidationError struct {
	Code      string
	Message   string
	SpokenMsg string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Spoken() string {
	if e.SpokenMsg != "" {
		return e.SpokenMsg
	}
	return "Die Angaben sind leider unvollständig. Bitte versuchen Sie es noch einmal."
}

// BusinessRuleViolation marks well-formed but semantically invalid input
// (checkout before checkin, stay too long, too many guests, past check-in).
type BusinessRuleViolation struct {
	Code      string
	Message   string
	SpokenMsg string
}

func (e *BusinessRuleViolation) Error() string { return e.Message }
func (e *BusinessRuleViolation) Spoken() string { return e.SpokenMsg }

// UpstreamUnavailable marks a failed or timed-out call to the channel
// manager or the LLM oracle. Callers always have a local fallback; this
// never propagates as a hard failure from Extract or Commit.
type UpstreamUnavailable struct {
	Upstream string
	Err      error
}

func (e *UpstreamUnavailable) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Upstream, e.Err)
}

func (e *UpstreamUnavailable) Unwrap() error { return e.Err }

func (e *UpstreamUnavailable) Spoken() string {
	return "Es gab leider ein technisches Problem. Einen Moment bitte, ich versuche es erneut."
}

// SpokenError is implemented by every domain error: any failure surfaced
// to the voice agent must carry a complete German sentence.
type SpokenError interface {
	error
	Spoken() string
}
