package theory

import "testing"

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input     string
		semitones int
		degree    int
	}{
		{"1P", 0, 1},
		{"2m", 1, 2},
		{"2M", 2, 2},
		{"3m", 3, 3},
		{"3M", 4, 3},
		{"4P", 5, 4},
		{"4A", 6, 4},
		{"5d", 6, 5},
		{"5P", 7, 5},
		{"5A", 8, 5},
		{"6m", 8, 6},
		{"6M", 9, 6},
		{"7d", 9, 7},
		{"7m", 10, 7},
		{"7M", 11, 7},
		{"8P", 12, 8},
		{"9M", 14, 9},
		{"11P", 17, 11},
		{"13M", 21, 13},
		{"2A", 3, 2},
		{"5dd", 5, 5},
		// Quality-first token order
		{"M3", 4, 3},
		{"P5", 7, 5},
		{"m7", 10, 7},
		{"A4", 6, 4},
		{"d5", 6, 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			iv := ParseInterval(tt.input)
			if !iv.Valid {
				t.Fatalf("ParseInterval(%q) invalid", tt.input)
			}
			if iv.Semitones != tt.semitones {
				t.Errorf("Semitones: expected %d, got %d", tt.semitones, iv.Semitones)
			}
			if iv.Degree != tt.degree {
				t.Errorf("Degree: expected %d, got %d", tt.degree, iv.Degree)
			}
		})
	}
}

func TestParseIntervalCanonicalName(t *testing.T) {
	// Both token orders normalize to degree-first
	if iv := ParseInterval("M3"); iv.Name != "3M" {
		t.Errorf("expected 3M, got %q", iv.Name)
	}
	if iv := ParseInterval("5P"); iv.Name != "5P" {
		t.Errorf("expected 5P, got %q", iv.Name)
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, input := range []string{"", "5M", "3P", "1m", "0P", "5", "P", "Ad5", "x3", "3x"} {
		if iv := ParseInterval(input); iv.Valid {
			t.Errorf("ParseInterval(%q): expected invalid, got %+v", input, iv)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		tonic string
		typ   string
	}{
		{"C major", "C", "major"},
		{"eb4 minor blues", "eb4", "minor blues"},
		{"F# lydian", "F#", "lydian"},
		{"pentatonic", "", "pentatonic"},
		{"minor pentatonic", "", "minor pentatonic"},
		{"C", "C", ""},
		{"", "", ""},
		{"  C   bebop dominant  ", "C", "bebop dominant"},
	}

	for _, tt := range tests {
		tonic, typ := Tokenize(tt.input)
		if tonic != tt.tonic || typ != tt.typ {
			t.Errorf("Tokenize(%q): expected (%q, %q), got (%q, %q)",
				tt.input, tt.tonic, tt.typ, tonic, typ)
		}
	}
}
