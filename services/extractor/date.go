package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotelvoice/config"
	"hotelvoice/models"
)

const isoLayout = "2006-01-02"

// Pattern layers. The guard class in front of euroDateRE keeps it from
// re-matching the tail of a malformed ISO date such as "2025-13-05".
var (
	isoDateRE  = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	inDaysRE   = regexp.MustCompile(`\bin (\d{1,3}) tag(?:en)?\b`)
	euroDateRE = regexp.MustCompile(`(?:^|[^\d./-])(\d{1,2})[./-](\d{1,2})(?:[./-](\d{2,4}))?`)
	longDateRE = buildLongDateRE()
)

func buildLongDateRE() *regexp.Regexp {
	names := make([]string, 0, len(monthNames))
	for name := range monthNames {
		names = append(names, name)
	}
	// longest first, so abbreviations never shadow full names
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if len(names[j]) > len(names[i]) {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	return regexp.MustCompile(`\b(\d{1,2})\.?\s*(` + strings.Join(names, "|") + `)\b\.?\s*(\d{4})?`)
}

// ParseDate resolves an utterance to a calendar date. field ("check_in",
// "check_out") is used in error messages only; base is the reference date
// for relative expressions, normally the current date.
//
// Resolution order, first match wins: relative-day words, "in N Tagen",
// weekday reference, ISO, European numeric, long form with month name,
// word-based day+month, generic fallback parse. Ambiguity never aborts
// the parse; it sets NeedsConfirmation so the voice flow re-confirms.
func ParseDate(raw, field string, base time.Time) (models.ParsedDate, error) {
	text := Normalize(raw)
	if text == "" {
		return models.ParsedDate{}, &models.DateParseError{Raw: raw, Field: field}
	}
	base = midnightUTC(base)

	// 1. heute / morgen / uebermorgen
	for _, rel := range relativeDays {
		if strings.Contains(text, rel.Word) {
			return models.ParsedDate{Date: base.AddDate(0, 0, rel.Offset).Format(isoLayout)}, nil
		}
	}

	// 2. "in N Tagen", N bounded to reject nonsense offsets
	if m := inDaysRE.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 364 {
			return models.ParsedDate{Date: base.AddDate(0, 0, n).Format(isoLayout)}, nil
		}
	}

	// 3. weekday reference: always the NEXT occurrence, never the base
	// date itself, and always flagged for confirmation
	for _, word := range strings.Fields(text) {
		if wd, ok := weekdayNames[trimPunct(word)]; ok {
			delta := int(wd-base.Weekday()+7) % 7
			if delta == 0 {
				delta = 7
			}
			return models.ParsedDate{
				Date:              base.AddDate(0, 0, delta).Format(isoLayout),
				NeedsConfirmation: true,
				Notes:             []string{models.NoteWeekdayInferred},
			}, nil
		}
	}

	// 4. ISO YYYY-MM-DD, validated against real calendar rules
	if m := isoDateRE.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if t, ok := validDate(y, mo, d); ok {
			return models.ParsedDate{Date: t.Format(isoLayout)}, nil
		}
	}

	// 5. European numeric D.M / D.M.YY / D.M.YYYY (also / and - separated)
	if m := euroDateRE.FindStringSubmatch(text); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		if pd, ok := resolveNumeric(d, mo, m[3], base); ok {
			return pd, nil
		}
	}

	// 6. long form "D. Monatsname [YYYY]"
	if m := longDateRE.FindStringSubmatch(text); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo := monthNames[m[2]]
		if pd, ok := resolveNumeric(d, mo, m[3], base); ok {
			return pd, nil
		}
	}

	// 7. word-based day and/or month ("zweiter oktober", "zweiter zehnter")
	if pd, ok := parseWordDate(text, base); ok {
		return pd, nil
	}

	// 8. generic fallback parse
	if pd, ok := parseFallback(text); ok {
		return pd, nil
	}

	return models.ParsedDate{}, &models.DateParseError{Raw: raw, Field: field}
}

// parseWordDate handles day/month given as German number words. A month
// expressed as a number word ("zehnter" = October?) is inherently
// ambiguous and always forces confirmation.
func parseWordDate(text string, base time.Time) (models.ParsedDate, bool) {
	words := strings.Fields(text)
	for i := 0; i+1 < len(words); i++ {
		w1 := trimPunct(words[i])
		w2 := trimPunct(words[i+1])

		day, dayIsWord := wordNumber(w1)
		if !dayIsWord {
			n, err := strconv.Atoi(strings.TrimSuffix(w1, "."))
			if err != nil {
				continue
			}
			day = n
		}
		if day < 1 || day > 31 {
			continue
		}

		if mo, ok := monthNames[w2]; ok {
			if !dayIsWord {
				continue // digit day + month name belongs to the long-form layer
			}
			if pd, ok := resolveNumeric(day, mo, yearAt(words, i+2), base); ok {
				pd.NeedsConfirmation = true
				pd.Notes = append(pd.Notes, models.NoteOrdinalOrWordFormat)
				return pd, true
			}
			continue
		}

		if mo, ok := wordNumber(w2); ok && mo >= 1 && mo <= 12 {
			if pd, ok := resolveNumeric(day, mo, yearAt(words, i+2), base); ok {
				pd.NeedsConfirmation = true
				pd.Notes = append(pd.Notes, models.NoteOrdinalOrWordFormat)
				return pd, true
			}
		}
	}
	return models.ParsedDate{}, false
}

var fallbackLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"02-01-2006",
}

func parseFallback(text string) (models.ParsedDate, bool) {
	minYear := config.AppConfig.MinFallbackYear
	if minYear == 0 {
		minYear = 1900
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, text); err == nil && t.Year() > minYear {
			return models.ParsedDate{
				Date:              t.Format(isoLayout),
				NeedsConfirmation: true,
				Notes:             []string{models.NoteFallbackDateParse},
			}, true
		}
	}
	return models.ParsedDate{}, false
}

// resolveNumeric builds a date from day/month plus an optional year
// string. Two-digit years are expanded by adding 2000. Without a year the
// base year applies; if that lands strictly before the base date the year
// rolls forward once and the result is flagged for confirmation.
func resolveNumeric(day, month int, yearStr string, base time.Time) (models.ParsedDate, bool) {
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return models.ParsedDate{}, false
		}
		if y < 100 {
			y += 2000
		}
		t, ok := validDate(y, month, day)
		if !ok {
			return models.ParsedDate{}, false
		}
		return models.ParsedDate{Date: t.Format(isoLayout)}, true
	}

	t, ok := validDate(base.Year(), month, day)
	if !ok {
		return models.ParsedDate{}, false
	}
	if t.Before(base) {
		rolled, ok := validDate(base.Year()+1, month, day)
		if !ok {
			return models.ParsedDate{}, false
		}
		return models.ParsedDate{
			Date:              rolled.Format(isoLayout),
			NeedsConfirmation: true,
			Notes:             []string{models.NoteYearRolledForward},
		}, true
	}
	return models.ParsedDate{Date: t.Format(isoLayout)}, true
}

// validDate round-trips the components through time.Date to reject
// impossible dates (Feb 30, month 13) that would otherwise normalize.
func validDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func trimPunct(w string) string {
	return strings.Trim(w, ".,!?;:")
}

func yearAt(words []string, idx int) string {
	if idx >= len(words) {
		return ""
	}
	w := trimPunct(words[idx])
	if len(w) == 4 {
		if _, err := strconv.Atoi(w); err == nil {
			return w
		}
	}
	return ""
}

// ResolveDate accepts either an already-normalized ISO date or raw
// utterance text. fromText reports whether natural-language parsing was
// needed, for the handler's meta envelope.
func ResolveDate(input, field string, base time.Time) (pd models.ParsedDate, fromText bool, err error) {
	trimmed := strings.TrimSpace(input)
	if t, perr := time.Parse(isoLayout, trimmed); perr == nil {
		return models.ParsedDate{Date: t.Format(isoLayout)}, false, nil
	}
	pd, err = ParseDate(input, field, base)
	return pd, true, err
}
