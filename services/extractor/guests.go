package extractor

import (
	"regexp"
	"strconv"
)

// Guest-count extraction runs on normalized text, independent of date
// extraction. Counts accept digits and German number words.
var (
	adultsRE      = regexp.MustCompile(`(\d+|[a-z]+) (erwachsene(?:r|n)?|personen|person)\b`)
	childrenRE    = regexp.MustCompile(`(\d+|[a-z]+) (kinder|kindern|kind)\b`)
	singleAdultRE = regexp.MustCompile(`\b(eine person|ein erwachsener|alleine|allein)\b`)
	noChildrenRE  = regexp.MustCompile(`\b(keine kinder|kein kind|ohne kinder|ohne kind)\b`)
)

// ExtractAdults returns the adult count of a normalized utterance.
// Defaults to 1 and never returns less than 1.
func ExtractAdults(text string) int {
	for _, m := range adultsRE.FindAllStringSubmatch(text, -1) {
		if n, ok := parseCount(m[1]); ok && n >= 1 {
			return n
		}
	}
	if singleAdultRE.MatchString(text) {
		return 1
	}
	return 1
}

// ExtractChildren returns the child count of a normalized utterance.
// Explicit negation ("keine Kinder", "ohne Kinder") forces 0; the default
// is 0 and the result is never negative.
func ExtractChildren(text string) int {
	if noChildrenRE.MatchString(text) {
		return 0
	}
	for _, m := range childrenRE.FindAllStringSubmatch(text, -1) {
		if n, ok := parseCount(m[1]); ok && n >= 0 {
			return n
		}
	}
	return 0
}

// parseCount coerces a digit token or number word to an integer.
func parseCount(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	if n, ok := wordNumber(token); ok {
		return n, true
	}
	return 0, false
}
