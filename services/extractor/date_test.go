package extractor

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hotelvoice/models"
)

// 2025-06-01 is a Sunday.
var base = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

func mustParse(t *testing.T, raw string) models.ParsedDate {
	t.Helper()
	pd, err := ParseDate(raw, "check_in", base)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", raw, err)
	}
	return pd
}

func hasNote(pd models.ParsedDate, note string) bool {
	for _, n := range pd.Notes {
		if n == note {
			return true
		}
	}
	return false
}

func TestParseDateRelativeWords(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"heute", "2025-06-01"},
		{"morgen", "2025-06-02"},
		{"übermorgen", "2025-06-03"},
		{"uebermorgen", "2025-06-03"},
		{"wir kommen übermorgen an", "2025-06-03"},
		{"Heute bitte", "2025-06-01"},
	}
	for _, tt := range tests {
		pd := mustParse(t, tt.raw)
		if pd.Date != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, pd.Date, tt.want)
		}
		if pd.NeedsConfirmation {
			t.Errorf("ParseDate(%q) unexpectedly needs confirmation", tt.raw)
		}
	}
}

func TestParseDateInDays(t *testing.T) {
	pd := mustParse(t, "in 3 Tagen")
	if pd.Date != "2025-06-04" {
		t.Errorf("in 3 Tagen = %s, want 2025-06-04", pd.Date)
	}
	if pd.NeedsConfirmation {
		t.Error("bounded relative offset should not need confirmation")
	}

	// out-of-range offsets are rejected, not clamped
	if _, err := ParseDate("in 400 Tagen", "check_in", base); err == nil {
		t.Error("expected error for 400-day offset")
	}
}

func TestParseDateWeekday(t *testing.T) {
	pd := mustParse(t, "nächsten Freitag")
	if pd.Date != "2025-06-06" {
		t.Errorf("nächsten Freitag from Sunday = %s, want 2025-06-06", pd.Date)
	}
	if !pd.NeedsConfirmation || !hasNote(pd, models.NoteWeekdayInferred) {
		t.Errorf("weekday resolution must be flagged, got %+v", pd)
	}
}

func TestParseDateWeekdayNeverReturnsBaseDate(t *testing.T) {
	names := []string{"montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag"}
	for _, name := range names {
		pd := mustParse(t, name)
		resolved, err := time.Parse("2006-01-02", pd.Date)
		if err != nil {
			t.Fatalf("%s: bad date %q", name, pd.Date)
		}
		days := int(resolved.Sub(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).Hours() / 24)
		if days < 1 || days > 7 {
			t.Errorf("%s resolved %d days ahead, want 1..7", name, days)
		}
		if weekdayNames[name] != resolved.Weekday() {
			t.Errorf("%s resolved to a %v", name, resolved.Weekday())
		}
	}

	// same weekday as the base date rolls a full week forward
	pd := mustParse(t, "am Sonntag")
	if pd.Date != "2025-06-08" {
		t.Errorf("Sonntag from Sunday = %s, want 2025-06-08", pd.Date)
	}
}

func TestParseDateISO(t *testing.T) {
	pd := mustParse(t, "2025-10-22")
	if pd.Date != "2025-10-22" || pd.NeedsConfirmation {
		t.Errorf("ISO parse = %+v, want exact date without confirmation", pd)
	}

	// impossible calendar dates must not normalize silently
	for _, raw := range []string{"2025-02-30", "2025-13-05", "2025-04-31"} {
		if _, err := ParseDate(raw, "check_in", base); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseDateISORoundTrip(t *testing.T) {
	years := []int{1900, 1944, 2001, 2025, 2100}
	days := []int{1, 15, 28}
	for _, y := range years {
		for m := 1; m <= 12; m++ {
			for _, d := range days {
				iso := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
				pd, err := ParseDate(iso, "check_in", base)
				if err != nil {
					t.Fatalf("round-trip %s failed: %v", iso, err)
				}
				if pd.Date != iso {
					t.Errorf("round-trip %s = %s", iso, pd.Date)
				}
			}
		}
	}
}

func TestParseDateEuropean(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		rolled bool
	}{
		{"22.10.2025", "2025-10-22", false},
		{"22.10.25", "2025-10-22", false},
		{"22/10/2025", "2025-10-22", false},
		{"22-10-2025", "2025-10-22", false},
		{"15.08", "2025-08-15", false},
		{"15.03", "2026-03-15", true},
		{"1.1", "2026-01-01", true},
		{"am 22.10. bitte", "2025-10-22", false},
	}
	for _, tt := range tests {
		pd := mustParse(t, tt.raw)
		if pd.Date != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, pd.Date, tt.want)
		}
		if tt.rolled != (pd.NeedsConfirmation && hasNote(pd, models.NoteYearRolledForward)) {
			t.Errorf("ParseDate(%q) rollover flag = %v/%v, want rolled=%v", tt.raw, pd.NeedsConfirmation, pd.Notes, tt.rolled)
		}
	}
}

func TestParseDateLongForm(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		rolled bool
	}{
		{"22. Oktober", "2025-10-22", false},
		{"22. Oktober 2026", "2026-10-22", false},
		{"22. Okt", "2025-10-22", false},
		{"3. März", "2026-03-03", true},
		{"1. Dezember", "2025-12-01", false},
	}
	for _, tt := range tests {
		pd := mustParse(t, tt.raw)
		if pd.Date != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, pd.Date, tt.want)
		}
		if tt.rolled != hasNote(pd, models.NoteYearRolledForward) {
			t.Errorf("ParseDate(%q) rollover = %v, want %v", tt.raw, pd.Notes, tt.rolled)
		}
	}
}

func TestParseDateWordBased(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"zweiter Oktober", "2025-10-02"},
		{"am zweiten Oktober", "2025-10-02"},
		{"zweiter zehnter", "2025-10-02"},
		{"dreißigster September", "2025-09-30"},
	}
	for _, tt := range tests {
		pd := mustParse(t, tt.raw)
		if pd.Date != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, pd.Date, tt.want)
		}
		if !pd.NeedsConfirmation || !hasNote(pd, models.NoteOrdinalOrWordFormat) {
			t.Errorf("ParseDate(%q) must force confirmation, got %+v", tt.raw, pd)
		}
	}
}

func TestParseDateFallback(t *testing.T) {
	pd := mustParse(t, "2025/10/22")
	if pd.Date != "2025-10-22" {
		t.Errorf("fallback parse = %s, want 2025-10-22", pd.Date)
	}
	if !pd.NeedsConfirmation || !hasNote(pd, models.NoteFallbackDateParse) {
		t.Errorf("fallback parse must be flagged, got %+v", pd)
	}
}

func TestParseDateFailure(t *testing.T) {
	for _, raw := range []string{"", "   ", "blah blubb", "irgendwann mal"} {
		_, err := ParseDate(raw, "check_out", base)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		var dpe *models.DateParseError
		if !errors.As(err, &dpe) {
			t.Fatalf("expected DateParseError for %q, got %T", raw, err)
		}
		if dpe.Field != "check_out" {
			t.Errorf("field = %q, want check_out", dpe.Field)
		}
		if dpe.Spoken() == "" {
			t.Error("spoken message must never be empty")
		}
	}
}

func TestResolveDate(t *testing.T) {
	pd, fromText, err := ResolveDate("2025-10-22", "check_in", base)
	if err != nil || fromText || pd.Date != "2025-10-22" {
		t.Errorf("ResolveDate(ISO) = %+v fromText=%v err=%v", pd, fromText, err)
	}

	pd, fromText, err = ResolveDate("übermorgen", "check_in", base)
	if err != nil || !fromText || pd.Date != "2025-06-03" {
		t.Errorf("ResolveDate(text) = %+v fromText=%v err=%v", pd, fromText, err)
	}
}
