package theory

import (
	"strconv"
	"strings"
)

// Interval represents a parsed interval name
type Interval struct {
	Name      string // Canonical "<degree><quality>" form, e.g. "3M", "5P"
	Semitones int
	Degree    int // 1-based ordinal (1=unison, 8=octave, 9=ninth...)
	Valid     bool
}

// Semitone width of the simple degrees 1-7 in the major scale
var degreeSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// perfectDegree reports whether a degree takes P instead of M/m
// (unisons, fourths, fifths and their compounds)
func perfectDegree(degree int) bool {
	switch (degree - 1) % 7 {
	case 0, 3, 4:
		return true
	}
	return false
}

// ParseInterval parses an interval name in either token order:
// "3M" or "M3", "P5" or "5P". Qualities: P, M, m, one or more A
// (augmented) or d (diminished). Compound degrees add octaves.
// Invalid input yields the zero Interval with Valid=false.
func ParseInterval(s string) Interval {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval{}
	}

	var numStr, quality string
	if s[0] >= '0' && s[0] <= '9' {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		numStr, quality = s[:i], s[i:]
	} else {
		i := len(s)
		for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			i--
		}
		quality, numStr = s[:i], s[i:]
	}

	degree, err := strconv.Atoi(numStr)
	if err != nil || degree < 1 || quality == "" {
		return Interval{}
	}

	alt, ok := qualityAlt(quality, perfectDegree(degree))
	if !ok {
		return Interval{}
	}

	semitones := degreeSemitones[(degree-1)%7] + 12*((degree-1)/7) + alt
	if semitones < 0 {
		return Interval{}
	}

	return Interval{
		Name:      numStr + quality,
		Semitones: semitones,
		Degree:    degree,
		Valid:     true,
	}
}

// qualityAlt maps a quality token to its semitone alteration
func qualityAlt(q string, perfect bool) (int, bool) {
	switch {
	case q == "P":
		if !perfect {
			return 0, false
		}
		return 0, true
	case q == "M":
		if perfect {
			return 0, false
		}
		return 0, true
	case q == "m":
		if perfect {
			return 0, false
		}
		return -1, true
	case strings.Count(q, "A") == len(q):
		return len(q), true
	case strings.Count(q, "d") == len(q):
		if perfect {
			return -len(q), true
		}
		return -len(q) - 1, true
	}
	return 0, false
}
