package extractor

import "testing"

func TestExtractAdults(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2 Erwachsene", 2},
		{"zwei Erwachsene", 2},
		{"für vier Personen", 4},
		{"eine Person", 1},
		{"ein Erwachsener", 1},
		{"10 Personen bitte", 10},
		{"nur das Zimmer bitte", 1}, // default
		{"", 1},
	}
	for _, tt := range tests {
		if got := ExtractAdults(Normalize(tt.raw)); got != tt.want {
			t.Errorf("ExtractAdults(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestExtractChildren(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1 Kind", 1},
		{"zwei Kinder", 2},
		{"mit einem Kind", 1},
		{"keine Kinder", 0},
		{"ohne Kinder", 0},
		{"kein Kind dabei", 0},
		{"wir reisen zu zweit", 0}, // default
		{"", 0},
	}
	for _, tt := range tests {
		if got := ExtractChildren(Normalize(tt.raw)); got != tt.want {
			t.Errorf("ExtractChildren(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestExtractGuestsCombined(t *testing.T) {
	text := Normalize("für 2 Erwachsene und 1 Kind")
	if got := ExtractAdults(text); got != 2 {
		t.Errorf("adults = %d, want 2", got)
	}
	if got := ExtractChildren(text); got != 1 {
		t.Errorf("children = %d, want 1", got)
	}
}
