// Package theory implements note and interval primitives
package theory

import "strings"

// Note represents a parsed note name
type Note struct {
	Name   string // Canonical name, e.g. "C#", "Bb3"
	Letter byte   // 'A'-'G'
	Alt    int    // Accidental offset: +1 per sharp, -1 per flat
	Oct    int    // Octave, meaningful only when HasOct
	HasOct bool
	Chroma int  // Pitch class 0-11 (C=0)
	Midi   int  // MIDI number (C4=60), -1 without octave
	Valid  bool
}

// Semitone offsets of the natural letters C D E F G A B
var naturalChroma = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseNote parses a note name like "C", "f#", "Bb4" or "C##2".
// Invalid input yields the zero Note with Valid=false.
func ParseNote(s string) Note {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{Midi: -1}
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if _, ok := naturalChroma[letter]; !ok {
		return Note{Midi: -1}
	}

	i := 1
	alt := 0
	for i < len(s) && (s[i] == '#' || s[i] == 'b') {
		// A run is all sharps or all flats, never mixed
		if s[i] != s[1] {
			return Note{Midi: -1}
		}
		if s[i] == '#' {
			alt++
		} else {
			alt--
		}
		i++
	}

	oct := 0
	hasOct := false
	if i < len(s) {
		neg := false
		j := i
		if s[j] == '-' {
			neg = true
			j++
		}
		if j >= len(s) {
			return Note{Midi: -1}
		}
		for ; j < len(s); j++ {
			if s[j] < '0' || s[j] > '9' {
				return Note{Midi: -1}
			}
			oct = oct*10 + int(s[j]-'0')
		}
		if neg {
			oct = -oct
		}
		hasOct = true
	}

	chroma := ((naturalChroma[letter]+alt)%12 + 12) % 12
	midi := -1
	if hasOct {
		midi = (oct+1)*12 + naturalChroma[letter] + alt
	}

	return Note{
		Name:   SpellNote(letter, alt, oct, hasOct),
		Letter: letter,
		Alt:    alt,
		Oct:    oct,
		HasOct: hasOct,
		Chroma: chroma,
		Midi:   midi,
		Valid:  true,
	}
}

// SpellNote renders letter + accidental (+ octave) as a note name.
// Accidentals of magnitude 2 come out as doubled glyphs ("F##", "Bbb").
func SpellNote(letter byte, alt, oct int, withOct bool) string {
	var b strings.Builder
	b.WriteByte(letter)
	for i := 0; i < alt; i++ {
		b.WriteByte('#')
	}
	for i := 0; i > alt; i-- {
		b.WriteByte('b')
	}
	if withOct {
		o := oct
		if o < 0 {
			b.WriteByte('-')
			o = -o
		}
		if o >= 10 {
			b.WriteByte(byte('0' + o/10))
		}
		b.WriteByte(byte('0' + o%10))
	}
	return b.String()
}

// PitchClass returns the note name without its octave
func (n Note) PitchClass() string {
	if !n.Valid {
		return ""
	}
	return SpellNote(n.Letter, n.Alt, 0, false)
}

// NaturalPitch returns the semitone value of a natural letter (C=0, B=11)
func NaturalPitch(letter byte) int {
	return naturalChroma[letter]
}

// NextLetter advances one natural letter, cycling G back to A
func NextLetter(letter byte) byte {
	switch letter {
	case 'G':
		return 'A'
	default:
		return letter + 1
	}
}
