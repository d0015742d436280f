package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/ascalekit/pkg/pcset"
)

func TestLookup(t *testing.T) {
	c, ok := Lookup("major seventh")
	require.True(t, ok)
	assert.Equal(t, "100010010001", c.Set.Chroma())

	alias, ok := Lookup("maj7")
	require.True(t, ok)
	assert.Equal(t, c.Name, alias.Name)

	_, ok = Lookup("nonexistent")
	assert.False(t, ok)
}

func TestCatalogShapes(t *testing.T) {
	tests := []struct {
		name string
		pcs  []int
	}{
		{"major", []int{0, 4, 7}},
		{"minor", []int{0, 3, 7}},
		{"diminished seventh", []int{0, 3, 6, 9}},
		{"dominant ninth", []int{0, 2, 4, 7, 10}},
		{"dominant thirteenth", []int{0, 2, 4, 7, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, pcset.FromPitchClasses(tt.pcs), c.Set)
			assert.Equal(t, len(tt.pcs), len(c.Intervals))
		})
	}
}

func TestForScale(t *testing.T) {
	major, ok := pcset.FromChroma("101011010101")
	require.True(t, ok)

	names := ForScale(major)
	assert.Contains(t, names, "major")
	assert.Contains(t, names, "major seventh")
	assert.Contains(t, names, "sixth")
	assert.Contains(t, names, "sus2")
	assert.Contains(t, names, "sus4")
	assert.Contains(t, names, "major ninth")
	assert.NotContains(t, names, "minor")
	assert.NotContains(t, names, "dominant seventh")

	assert.Empty(t, ForScale(pcset.Empty))
}

func TestAllPreservesOrder(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, "major", all[0].Name)
	assert.Equal(t, "minor", all[1].Name)
}
