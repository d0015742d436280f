package pcset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/ascalekit/pkg/theory"
)

const majorChroma = "101011010101"

func mustSet(t *testing.T, chroma string) Set {
	t.Helper()
	s, ok := FromChroma(chroma)
	require.True(t, ok, "bad chroma %q", chroma)
	return s
}

func TestChromaNumRoundTrip(t *testing.T) {
	s := mustSet(t, majorChroma)
	assert.Equal(t, majorChroma, s.Chroma())
	assert.Equal(t, 2773, s.Num())
	assert.Equal(t, 7, s.Count())
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(11))
	assert.False(t, s.Has(1))
}

func TestFromChromaRejectsBadInput(t *testing.T) {
	for _, chroma := range []string{"", "1010", "1010110101012", "10101101010x"} {
		_, ok := FromChroma(chroma)
		assert.False(t, ok, "chroma %q", chroma)
	}
}

func TestFromIntervals(t *testing.T) {
	var ivs []theory.Interval
	for _, name := range []string{"2M", "3M", "4P", "5P", "6M", "7M"} {
		iv := theory.ParseInterval(name)
		require.True(t, iv.Valid)
		ivs = append(ivs, iv)
	}
	// Root is included even though 1P was not listed
	assert.Equal(t, majorChroma, FromIntervals(ivs).Chroma())
}

func TestRotateLaws(t *testing.T) {
	sets := []Set{
		mustSet(t, majorChroma),
		mustSet(t, "100000000000"),
		mustSet(t, "111111111111"),
		mustSet(t, "101101010110"),
	}
	for _, s := range sets {
		assert.Equal(t, s, s.Rotate(0))
		assert.Equal(t, s, s.Rotate(12))
		assert.Equal(t, s, s.Rotate(-12))
		for a := -13; a <= 13; a++ {
			for b := -13; b <= 13; b++ {
				assert.Equal(t, s.Rotate(a+b), s.Rotate(a).Rotate(b))
			}
		}
	}
}

func TestRotateDirection(t *testing.T) {
	s := mustSet(t, "110000000000")
	// Bit i of the result is bit (i+n) mod 12 of the input
	assert.Equal(t, mustSet(t, "100000000001"), s.Rotate(1))
	assert.Equal(t, mustSet(t, "011000000000"), s.Rotate(-1))
}

func TestSubsetSuperset(t *testing.T) {
	major := mustSet(t, majorChroma)
	majorPenta := FromPitchClasses([]int{0, 2, 4, 7, 9})

	assert.True(t, major.IsSubsetOf(major), "subset is reflexive")
	assert.True(t, majorPenta.IsSubsetOf(major))
	assert.False(t, major.IsSubsetOf(majorPenta))
	assert.True(t, major.IsSupersetOf(majorPenta))
	assert.True(t, Empty.IsSubsetOf(major))
}

func TestModes(t *testing.T) {
	major := mustSet(t, majorChroma)
	modes := major.Modes()
	require.Len(t, modes, major.Count())
	for i, m := range modes {
		assert.True(t, m.Has(0), "mode %d must keep the root bit", i)
		assert.Equal(t, major.Count(), m.Count())
	}
	// Degree 2 of the major shape is dorian
	assert.Equal(t, "101101010110", modes[1].Chroma())

	// Symmetric sets keep their duplicate rotations, one per degree
	whole := FromPitchClasses([]int{0, 2, 4, 6, 8, 10})
	modes = whole.Modes()
	require.Len(t, modes, 6)
	for _, m := range modes {
		assert.Equal(t, whole, m)
	}
}

func TestNormalized(t *testing.T) {
	major := mustSet(t, majorChroma)
	for d := 0; d < 12; d++ {
		rotated := major.Rotate(d)
		assert.Equal(t, major.Normalized(), rotated.Normalized(), "rotation %d", d)
	}
	assert.Equal(t, Empty, Empty.Normalized())

	// The diatonic modes all share one shape
	dorian := mustSet(t, "101101010110")
	assert.Equal(t, major.Normalized(), dorian.Normalized())

	// Normalizing is idempotent and root-anchored
	s := FromPitchClasses([]int{3, 7, 10})
	n := s.Normalized()
	assert.Equal(t, n, n.Normalized())
	assert.True(t, n.Has(0))
	assert.Equal(t, s.Count(), n.Count())
}

func TestPitchClasses(t *testing.T) {
	s := FromPitchClasses([]int{7, 0, 4, 16})
	assert.Equal(t, []int{0, 4, 7}, s.PitchClasses())
}
