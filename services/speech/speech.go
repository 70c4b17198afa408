// Package speech renders values the way a German text-to-speech voice
// says them. Pluralization is a tested behavior here, not decoration:
// "2 Nacht" read aloud sounds broken.
package speech

import (
	"fmt"
	"strings"
	"time"
)

var spokenMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Nights inflects Nacht/Nächte.
func Nights(n int) string {
	if n == 1 {
		return "1 Nacht"
	}
	return fmt.Sprintf("%d Nächte", n)
}

// Guests inflects Gast/Gäste.
func Guests(n int) string {
	if n == 1 {
		return "1 Gast"
	}
	return fmt.Sprintf("%d Gäste", n)
}

// Adults inflects Erwachsener/Erwachsene.
func Adults(n int) string {
	if n == 1 {
		return "1 Erwachsener"
	}
	return fmt.Sprintf("%d Erwachsene", n)
}

// Children inflects Kind/Kinder.
func Children(n int) string {
	if n == 1 {
		return "1 Kind"
	}
	return fmt.Sprintf("%d Kinder", n)
}

// Date renders an ISO date the way it is said: "22. Oktober".
func Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d. %s", t.Day(), spokenMonths[t.Month()-1])
}

// Euro renders an amount for speech: whole amounts without cents,
// fractional ones with the German decimal comma.
func Euro(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d Euro", int64(amount))
	}
	return strings.Replace(fmt.Sprintf("%.2f Euro", amount), ".", ",", 1)
}
