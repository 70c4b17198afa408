package speech

import "testing"

func TestNights(t *testing.T) {
	if got := Nights(1); got != "1 Nacht" {
		t.Errorf("Nights(1) = %q", got)
	}
	if got := Nights(2); got != "2 Nächte" {
		t.Errorf("Nights(2) = %q", got)
	}
}

func TestGuestPhrases(t *testing.T) {
	if got := Guests(1); got != "1 Gast" {
		t.Errorf("Guests(1) = %q", got)
	}
	if got := Guests(4); got != "4 Gäste" {
		t.Errorf("Guests(4) = %q", got)
	}
	if got := Adults(1); got != "1 Erwachsener" {
		t.Errorf("Adults(1) = %q", got)
	}
	if got := Adults(2); got != "2 Erwachsene" {
		t.Errorf("Adults(2) = %q", got)
	}
	if got := Children(1); got != "1 Kind" {
		t.Errorf("Children(1) = %q", got)
	}
	if got := Children(3); got != "3 Kinder" {
		t.Errorf("Children(3) = %q", got)
	}
}

func TestDate(t *testing.T) {
	if got := Date("2025-10-22"); got != "22. Oktober" {
		t.Errorf("Date = %q", got)
	}
	if got := Date("2026-03-01"); got != "1. März" {
		t.Errorf("Date = %q", got)
	}
	// unparseable input passes through rather than crashing the sentence
	if got := Date("bald"); got != "bald" {
		t.Errorf("Date(bald) = %q", got)
	}
}

func TestEuro(t *testing.T) {
	if got := Euro(236); got != "236 Euro" {
		t.Errorf("Euro(236) = %q", got)
	}
	if got := Euro(212.50); got != "212,50 Euro" {
		t.Errorf("Euro(212.50) = %q", got)
	}
}
