package extractor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "MORGEN", "morgen"},
		{"precomposed umlaut", "Übermorgen", "uebermorgen"},
		{"decomposed umlaut", "U\u0308bermorgen", "uebermorgen"},
		{"eszett", "Grüße", "gruesse"},
		{"all umlauts", "äöüß", "aeoeuess"},
		{"foreign accents stripped", "café naïve", "cafe naive"},
		{"whitespace collapsed", "  vom   22.10.  bis\t24.10. ", "vom 22.10. bis 24.10."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePrecomposedAndDecomposedAgree(t *testing.T) {
	// precomposed "ä" vs "a" + combining diaeresis must hit the same keys
	if a, b := Normalize("n\u00e4chsten"), Normalize("na\u0308chsten"); a != b {
		t.Errorf("precomposed %q != decomposed %q", a, b)
	}
}
