package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"hotelvoice/models"
)

// Free-text scan patterns. Three families: dotted European, slashed, and
// long form with a month name. The long-form family reuses longDateRE.
var (
	dottedScanRE  = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.?(\d{2,4})?`)
	slashedScanRE = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
)

// CollectDates scans an entire utterance for all date-like substrings,
// parses each candidate independently, deduplicates and returns them
// sorted. The "YYYY-MM-DD" form makes lexicographic order chronological.
func CollectDates(text string, base time.Time) []models.ParsedDate {
	normalized := Normalize(text)
	base = midnightUTC(base)

	seen := make(map[string]models.ParsedDate)

	for _, m := range dottedScanRE.FindAllStringSubmatch(normalized, -1) {
		addCandidate(seen, m[1], m[2], m[3], base)
	}
	for _, m := range slashedScanRE.FindAllStringSubmatch(normalized, -1) {
		addCandidate(seen, m[1], m[2], m[3], base)
	}
	for _, m := range longDateRE.FindAllStringSubmatch(normalized, -1) {
		day, _ := strconv.Atoi(m[1])
		if pd, ok := resolveNumeric(day, monthNames[m[2]], m[3], base); ok {
			if _, dup := seen[pd.Date]; !dup {
				seen[pd.Date] = pd
			}
		}
	}

	dates := make([]models.ParsedDate, 0, len(seen))
	for _, pd := range seen {
		dates = append(dates, pd)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Date < dates[j].Date })
	return dates
}

func addCandidate(seen map[string]models.ParsedDate, dayStr, monthStr, yearStr string, base time.Time) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return
	}
	pd, ok := resolveNumeric(day, month, yearStr, base)
	if !ok {
		return
	}
	if _, dup := seen[pd.Date]; !dup {
		seen[pd.Date] = pd
	}
}

// ExtractSlots converts a raw utterance into booking slots. The first two
// mentioned dates, in chronological order, become check-in and check-out.
// That is a heuristic: a third date in the same sentence (a birthday, say)
// cannot be told apart from a stay date; the confirmation flag is the
// designed mitigation, not a bug to fix here.
func ExtractSlots(text string, base time.Time) *models.BookingSlots {
	normalized := Normalize(text)

	slots := &models.BookingSlots{
		Adults:   ExtractAdults(normalized),
		Children: ExtractChildren(normalized),
	}

	dates := CollectDates(text, base)
	if len(dates) > 0 {
		d := dates[0]
		slots.CheckIn = &d
	}
	if len(dates) > 1 {
		d := dates[1]
		slots.CheckOut = &d
	}
	return slots
}
