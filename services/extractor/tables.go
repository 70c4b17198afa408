package extractor

import "time"

// Static lookup tables. All keys are in normalized form (lowercase,
// umlauts expanded). Built once, read-only, shared across requests.

// relativeDays maps literal relative-day words to day offsets. Ordered:
// "uebermorgen" contains "morgen" and must be checked first.
var relativeDays = []struct {
	Word   string
	Offset int
}{
	{"uebermorgen", 2},
	{"morgen", 1},
	{"heute", 0},
}

// weekdayNames resolves German weekday names. "sonnabend" is the northern
// variant of Saturday.
var weekdayNames = map[string]time.Weekday{
	"montag":     time.Monday,
	"dienstag":   time.Tuesday,
	"mittwoch":   time.Wednesday,
	"donnerstag": time.Thursday,
	"freitag":    time.Friday,
	"samstag":    time.Saturday,
	"sonnabend":  time.Saturday,
	"sonntag":    time.Sunday,
}

// monthNames resolves full German month names and their common
// abbreviations. "marz"/"mar" cover users who type März without umlaut
// support before normalization would help them.
var monthNames = map[string]int{
	"januar": 1, "jan": 1,
	"februar": 2, "feb": 2,
	"maerz": 3, "marz": 3, "maer": 3, "mar": 3,
	"april": 4, "apr": 4,
	"mai": 5,
	"juni": 6, "jun": 6,
	"juli": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"oktober": 10, "okt": 10,
	"november": 11, "nov": 11,
	"dezember": 12, "dez": 12,
}

// numberWords covers 1..31, compounds included. The irregular stems
// ("er", "drit", "sech", "sieb", "ach") are what remains of the ordinals
// erste, dritte, sechste, siebte and achte after suffix stripping.
var numberWords = map[string]int{
	"eins": 1, "ein": 1, "eine": 1, "einem": 1, "einer": 1, "er": 1,
	"zwei": 2,
	"drei": 3, "drit": 3,
	"vier":  4,
	"fuenf": 5,
	"sechs": 6, "sech": 6,
	"sieben": 7, "sieb": 7,
	"acht": 8, "ach": 8,
	"neun":     9,
	"zehn":     10,
	"elf":      11,
	"zwoelf":   12,
	"dreizehn": 13,
	"vierzehn": 14,
	"fuenfzehn": 15,
	"sechzehn":  16,
	"siebzehn":  17,
	"achtzehn":  18,
	"neunzehn":  19,
	"zwanzig":   20,
	"einundzwanzig":    21,
	"zweiundzwanzig":   22,
	"dreiundzwanzig":   23,
	"vierundzwanzig":   24,
	"fuenfundzwanzig":  25,
	"sechsundzwanzig":  26,
	"siebenundzwanzig": 27,
	"achtundzwanzig":   28,
	"neunundzwanzig":   29,
	"dreissig":         30,
	"einunddreissig":   31,
}

// ordinalSuffixes are stripped from day/month words before the
// numberWords lookup ("zweiten" -> "zwei", "zwanzigste" -> "zwanzig").
// Longest first so "-sten" wins over "-ten".
var ordinalSuffixes = []string{"sten", "ster", "stes", "ste", "ten", "ter", "tes", "te"}

// stripOrdinal removes a trailing ordinal suffix, if any.
func stripOrdinal(word string) string {
	for _, suf := range ordinalSuffixes {
		if len(word) > len(suf) {
			if word[len(word)-len(suf):] == suf {
				return word[:len(word)-len(suf)]
			}
		}
	}
	return word
}

// wordNumber resolves a normalized token to an integer, accepting both
// cardinal ("zwei") and ordinal ("zweiten") forms. ok is false when the
// token is no number word.
func wordNumber(word string) (int, bool) {
	if n, ok := numberWords[word]; ok {
		return n, true
	}
	if n, ok := numberWords[stripOrdinal(word)]; ok {
		return n, true
	}
	return 0, false
}
