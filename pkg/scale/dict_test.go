package scale

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTypeKeys(t *testing.T) {
	major, ok := LookupType("major")
	require.True(t, ok)
	assert.Equal(t, "major", major.Name)
	assert.Equal(t, "101011010101", major.Set.Chroma())
	assert.Equal(t, 2773, major.Set.Num())

	// The same entry is reachable by alias, chroma and fingerprint
	byAlias, ok := LookupType("ionian")
	require.True(t, ok)
	assert.Equal(t, major.Name, byAlias.Name)

	byChroma, ok := LookupType("101011010101")
	require.True(t, ok)
	assert.Equal(t, major.Name, byChroma.Name)

	byNum, ok := LookupType(strconv.Itoa(major.Set.Num()))
	require.True(t, ok)
	assert.Equal(t, major.Name, byNum.Name)

	byNumDirect, ok := LookupTypeNum(major.Set.Num())
	require.True(t, ok)
	assert.Equal(t, major.Name, byNumDirect.Name)
}

func TestLookupTypeMiss(t *testing.T) {
	for _, key := range []string{"", "nonexistent-type", "123456", "000000000000"} {
		_, ok := LookupType(key)
		assert.False(t, ok, "key %q", key)
	}
	_, ok := LookupTypeNum(1)
	assert.False(t, ok)
}

// "bebop dominant" and "bebop" are distinct entries over one pitch-class
// set; fingerprint lookup resolves to whichever registered first.
func TestFingerprintCollisionFirstWins(t *testing.T) {
	bd, ok := LookupType("bebop dominant")
	require.True(t, ok)
	bb, ok := LookupType("bebop")
	require.True(t, ok)
	assert.Equal(t, bd.Set, bb.Set)

	winner, ok := LookupTypeNum(bd.Set.Num())
	require.True(t, ok)
	assert.Equal(t, "bebop dominant", winner.Name)
}

func TestTypesOrderAndInvariants(t *testing.T) {
	types := Types()
	require.Greater(t, len(types), 50)
	assert.Equal(t, "major pentatonic", types[0].Name, "registration order is preserved")

	for _, typ := range types {
		assert.Equal(t, len(typ.Intervals), typ.Set.Count(),
			"%s: interval count must match signature popcount", typ.Name)
		assert.True(t, typ.Set.Has(0), "%s: root bit must be set", typ.Name)
		assert.Equal(t, 0, typ.Intervals[0].Semitones, "%s: first interval is the unison", typ.Name)
		prev := -1
		for _, iv := range typ.Intervals {
			assert.Greater(t, iv.Semitones, prev, "%s: intervals ascend", typ.Name)
			prev = iv.Semitones
		}
	}
}
