package utils

import (
	"math"
	"time"
)

const isoLayout = "2006-01-02"

// ParseISODate parses "YYYY-MM-DD" to a time at UTC midnight.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(isoLayout, s)
}

// NightsBetween counts the nights between two ISO dates. Dates are
// compared at UTC midnight so daylight-saving transitions cannot shave a
// night off. Reversed or equal dates yield 0, never a negative count.
func NightsBetween(checkIn, checkOut string) (int, error) {
	in, err := ParseISODate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseISODate(checkOut)
	if err != nil {
		return 0, err
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0, nil
	}
	return nights, nil
}

// Round2 rounds a currency amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
