package scale

import (
	"math"

	"github.com/anthropics/ascalekit/pkg/chord"
	"github.com/anthropics/ascalekit/pkg/pcset"
	"github.com/anthropics/ascalekit/pkg/theory"
)

// Scale is a scale type instantiated at a tonic. A Scale with no
// resolvable type is the empty sentinel (Valid=false, zero Set); a
// Scale with a type but no tonic is unrooted and still valid.
type Scale struct {
	Name      string
	Tonic     string // Spelled tonic, "" when unrooted
	Type      string // Canonical type name
	Aliases   []string
	Intervals []theory.Interval
	Set       pcset.Set // Rotated into the tonic's key when rooted
	Notes     []string
	Formula   []int // Ordered semitone widths, independent of key
	Valid     bool
}

// Get resolves free text like "C major", "eb4 minor blues" or
// "dorian" into a Scale
func Get(name string) Scale {
	tonic, typeName := theory.Tokenize(name)
	return New(tonic, typeName)
}

// New instantiates typeName at tonicName. An unknown type yields the
// empty sentinel; an unparsable tonic yields an unrooted scale that
// keeps the type's root-relative signature. Identical inputs always
// yield identical output.
func New(tonicName, typeName string) Scale {
	t, ok := LookupType(typeName)
	if !ok {
		return Scale{}
	}

	s := Scale{
		Name:      t.Name,
		Type:      t.Name,
		Aliases:   t.Aliases,
		Intervals: t.Intervals,
		Set:       t.Set,
		Formula:   make([]int, len(t.Intervals)),
		Valid:     true,
	}
	for i, iv := range t.Intervals {
		s.Formula[i] = iv.Semitones
	}

	tonic := theory.ParseNote(tonicName)
	if !tonic.Valid {
		return s
	}

	s.Tonic = tonic.Name
	s.Name = tonic.PitchClass() + " " + t.Name
	s.Set = t.Set.Rotate(-tonic.Chroma)
	s.Notes = spellNotes(tonic, t.Intervals)
	return s
}

// spellNotes assigns one spelled note per scale degree, folding over
// the interval sequence. Letters advance exactly one natural step per
// degree; the accidental is the signed semitone difference between the
// target pitch and the natural letter at its nearest octave.
func spellNotes(tonic theory.Note, intervals []theory.Interval) []string {
	if len(intervals) == 0 {
		return nil
	}
	notes := make([]string, len(intervals))
	notes[0] = tonic.Name

	oct := tonic.Oct
	if !tonic.HasOct {
		oct = 4
	}
	root := oct*12 + theory.NaturalPitch(tonic.Letter) + tonic.Alt

	letter := tonic.Letter
	for i := 1; i < len(intervals); i++ {
		letter = theory.NextLetter(letter)
		target := root + intervals[i].Semitones
		np := theory.NaturalPitch(letter)
		o := int(math.Round(float64(target-np) / 12.0))
		alt := target - (o*12 + np)
		notes[i] = theory.SpellNote(letter, alt, o, tonic.HasOct)
	}
	return notes
}

// baseSet returns the root-relative signature of a scale's type,
// regardless of the key the scale itself is rotated into
func baseSet(s Scale) (pcset.Set, bool) {
	t, ok := LookupType(s.Type)
	if !ok {
		return pcset.Empty, false
	}
	return t.Set, true
}

// Extended lists every dictionary type whose pitch-class shape is a
// strict superset of the given scale's: same notes plus more. The
// query scale itself (and anything enharmonically equal) is excluded.
func Extended(name string) []string {
	s := Get(name)
	base, ok := baseSet(s)
	if !ok {
		return nil
	}
	var out []string
	for _, t := range getDict().types {
		if base.IsSubsetOf(t.Set) && t.Set != base {
			out = append(out, t.Name)
		}
	}
	return out
}

// Reduced lists every dictionary type whose pitch-class shape is a
// strict subset of the given scale's
func Reduced(name string) []string {
	s := Get(name)
	base, ok := baseSet(s)
	if !ok {
		return nil
	}
	var out []string
	for _, t := range getDict().types {
		if t.Set.IsSubsetOf(base) && t.Set != base {
			out = append(out, t.Name)
		}
	}
	return out
}

// Mode pairs a scale degree with the named scale its rotation matches
type Mode struct {
	Tonic string // Degree note when rooted, interval name otherwise
	Name  string
}

// Modes rotates the scale's signature onto each of its degrees and
// looks the result up in the dictionary. Degrees whose rotation has no
// dictionary name are dropped.
func Modes(name string) []Mode {
	s := Get(name)
	base, ok := baseSet(s)
	if !ok {
		return nil
	}

	var out []Mode
	degree := 0
	for d := 0; d < 12; d++ {
		if !base.Has(d) {
			continue
		}
		if t, found := lookupSet(base.Rotate(d)); found {
			label := s.Intervals[degree].Name
			if s.Tonic != "" {
				label = theory.ParseNote(s.Notes[degree]).PitchClass()
			}
			out = append(out, Mode{Tonic: label, Name: t.Name})
		}
		degree++
	}
	return out
}

// Steps renders the scale as whole/half/augmented step symbols, the
// last step closing the octave (major: W W H W W W H)
func Steps(name string) []string {
	s := Get(name)
	if !s.Valid || len(s.Formula) == 0 {
		return nil
	}
	widths := append(append([]int{}, s.Formula...), 12)
	out := make([]string, len(s.Formula))
	for i := range out {
		switch widths[i+1] - widths[i] {
		case 1:
			out[i] = "H"
		case 2:
			out[i] = "W"
		default:
			out[i] = "A"
		}
	}
	return out
}

// Chords lists the chord types whose pitch classes all fit the scale
func Chords(name string) []string {
	s := Get(name)
	base, ok := baseSet(s)
	if !ok {
		return nil
	}
	return chord.ForScale(base)
}
