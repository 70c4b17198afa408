package utils

import "testing"

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		in, out string
		want    int
	}{
		{"2025-10-20", "2025-10-22", 2},
		{"2025-10-20", "2025-10-21", 1},
		{"2025-10-20", "2025-10-20", 0},
		{"2025-10-22", "2025-10-20", 0}, // reversed clamps, never negative
		{"2025-12-30", "2026-01-02", 3}, // across the year boundary
	}
	for _, tt := range tests {
		got, err := NightsBetween(tt.in, tt.out)
		if err != nil {
			t.Fatalf("NightsBetween(%s, %s) failed: %v", tt.in, tt.out, err)
		}
		if got != tt.want {
			t.Errorf("NightsBetween(%s, %s) = %d, want %d", tt.in, tt.out, got, tt.want)
		}
	}
}

func TestNightsBetweenBadInput(t *testing.T) {
	if _, err := NightsBetween("morgen", "2025-10-22"); err == nil {
		t.Error("expected error for non-ISO check-in")
	}
	if _, err := NightsBetween("2025-10-20", "22.10.2025"); err == nil {
		t.Error("expected error for non-ISO check-out")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{236.0, 236.0},
		{212.499, 212.5},
		{0.1 + 0.2, 0.3},
		{99.994, 99.99},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
