// Package pcset implements 12-tone pitch-class set algebra
package pcset

import (
	"math/bits"

	"github.com/anthropics/ascalekit/pkg/theory"
)

// Set is a subset of the 12 pitch classes. Bit i is pitch class i
// above an implicit root, so bit 0 marks the root itself. The chroma
// string and numeric fingerprint are derived views of the same bits:
// chroma index 0 = bit 0, and the fingerprint reads the chroma as a
// binary number with index 0 as the most significant bit
// (major "101011010101" = 2773).
type Set uint16

const mask = 0xFFF

// Empty is the all-zero set, the sentinel for "no scale"
const Empty Set = 0

// FromIntervals builds a set from interval semitone widths.
// The root (bit 0) is always included.
func FromIntervals(intervals []theory.Interval) Set {
	s := Set(1)
	for _, iv := range intervals {
		s |= 1 << ((iv.Semitones%12 + 12) % 12)
	}
	return s
}

// FromChroma parses a 12-character '0'/'1' chroma string
func FromChroma(chroma string) (Set, bool) {
	if len(chroma) != 12 {
		return Empty, false
	}
	var s Set
	for i := 0; i < 12; i++ {
		switch chroma[i] {
		case '1':
			s |= 1 << i
		case '0':
		default:
			return Empty, false
		}
	}
	return s, true
}

// FromPitchClasses builds a set from absolute pitch classes (0-11)
func FromPitchClasses(pcs []int) Set {
	var s Set
	for _, pc := range pcs {
		s |= 1 << ((pc%12 + 12) % 12)
	}
	return s
}

// Chroma returns the 12-character '0'/'1' string view
func (s Set) Chroma() string {
	b := make([]byte, 12)
	for i := 0; i < 12; i++ {
		if s.Has(i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// Num returns the numeric fingerprint
func (s Set) Num() int {
	n := 0
	for i := 0; i < 12; i++ {
		n <<= 1
		if s.Has(i) {
			n |= 1
		}
	}
	return n
}

// Count returns the number of pitch classes in the set
func (s Set) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Has reports whether pitch class pc is in the set
func (s Set) Has(pc int) bool {
	return s&(1<<((pc%12+12)%12)) != 0
}

// Rotate cyclically rotates the pattern: bit i of the result is bit
// (i+n) mod 12 of s. Re-keying a root-relative template to tonic pitch
// class t is Rotate(-t).
func (s Set) Rotate(n int) Set {
	n = ((n % 12) + 12) % 12
	return ((s >> n) | (s << (12 - n))) & mask
}

// IsSubsetOf reports whether every pitch class of s is in o.
// Reflexive: s.IsSubsetOf(s) is true.
func (s Set) IsSubsetOf(o Set) bool {
	return s&o == s
}

// IsSupersetOf reports whether s contains every pitch class of o
func (s Set) IsSupersetOf(o Set) bool {
	return o.IsSubsetOf(s)
}

// Modes enumerates the rotation of s starting at each active bit, in
// ascending order. Every result keeps bit 0 set; the slice aligns 1:1
// with scale degrees, so rotationally symmetric duplicates are kept.
func (s Set) Modes() []Set {
	var out []Set
	for d := 0; d < 12; d++ {
		if s.Has(d) {
			out = append(out, s.Rotate(d))
		}
	}
	return out
}

// Normalized returns a canonical rotation of the set for shape
// comparisons. All rotations of one pattern normalize to the same
// value: among the rotations anchored on an active bit, the one with
// the smallest fingerprint wins, so the result is independent of
// which pitch class the caller started from.
func (s Set) Normalized() Set {
	best := Empty
	for d := 0; d < 12; d++ {
		if !s.Has(d) {
			continue
		}
		r := s.Rotate(d)
		if best == Empty || r.Num() < best.Num() {
			best = r
		}
	}
	return best
}

// PitchClasses returns the active pitch classes in ascending order
func (s Set) PitchClasses() []int {
	out := make([]int, 0, s.Count())
	for i := 0; i < 12; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}
