package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// umlautReplacer expands German umlauts to their ASCII digraphs so that
// native spelling and ASCII spelling hit the same lookup keys.
var umlautReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// stripMarks removes combining accents after NFKD decomposition.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize lowercases, expands umlauts and strips remaining diacritics.
// The text is NFC-composed before the umlaut pass so that decomposed input
// ("a" + combining diaeresis) expands exactly like precomposed "ä";
// stripping first would turn "ä" into a plain "a" and miss every umlaut
// lookup key.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = norm.NFC.String(s)
	s = umlautReplacer.Replace(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
