// Package chord implements the chord template catalog
package chord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/anthropics/ascalekit/pkg/pcset"
	"github.com/anthropics/ascalekit/pkg/theory"
)

// Chord is one immutable catalog entry
type Chord struct {
	Name      string
	Aliases   []string
	Intervals []theory.Interval
	Set       pcset.Set
}

var catalogData = []struct {
	intervals string
	name      string
	aliases   []string
}{
	{"1P 3M 5P", "major", []string{"M", "maj"}},
	{"1P 3m 5P", "minor", []string{"m", "min"}},
	{"1P 3m 5d", "diminished", []string{"dim"}},
	{"1P 3M 5A", "augmented", []string{"aug"}},
	{"1P 2M 5P", "sus2", nil},
	{"1P 4P 5P", "sus4", nil},
	{"1P 5P", "fifth", []string{"5"}},
	{"1P 3M 5P 7m", "dominant seventh", []string{"7", "dom7"}},
	{"1P 3M 5P 7M", "major seventh", []string{"maj7"}},
	{"1P 3m 5P 7m", "minor seventh", []string{"m7", "min7"}},
	{"1P 3m 5P 7M", "minor/major seventh", []string{"mMaj7"}},
	{"1P 3m 5d 7m", "half-diminished", []string{"m7b5"}},
	{"1P 3m 5d 7d", "diminished seventh", []string{"dim7"}},
	{"1P 3M 5P 6M", "sixth", []string{"6"}},
	{"1P 3m 5P 6M", "minor sixth", []string{"m6"}},
	{"1P 3M 5P 7m 9M", "dominant ninth", []string{"9"}},
	{"1P 3M 5P 7M 9M", "major ninth", []string{"maj9"}},
	{"1P 3m 5P 7m 9M", "minor ninth", []string{"m9"}},
	{"1P 3M 5P 7m 9M 13M", "dominant thirteenth", []string{"13"}},
	{"1P 4P 7m", "quartal", nil},
}

var (
	catalogOnce sync.Once
	catalog     []Chord
	byKey       map[string]int
)

// getCatalog builds the catalog on first use; malformed static data
// aborts construction
func getCatalog() []Chord {
	catalogOnce.Do(func() {
		byKey = make(map[string]int)
		for _, raw := range catalogData {
			c := Chord{Name: raw.name, Aliases: raw.aliases}
			for _, tok := range strings.Fields(raw.intervals) {
				iv := theory.ParseInterval(tok)
				if !iv.Valid {
					panic(fmt.Sprintf("chord: bad interval %q in template %q", tok, raw.name))
				}
				c.Intervals = append(c.Intervals, iv)
			}
			c.Set = pcset.FromIntervals(c.Intervals)

			idx := len(catalog)
			catalog = append(catalog, c)
			byKey[c.Name] = idx
			for _, a := range c.Aliases {
				byKey[a] = idx
			}
		}
	})
	return catalog
}

// All returns every chord template in registration order
func All() []Chord {
	cat := getCatalog()
	out := make([]Chord, len(cat))
	copy(out, cat)
	return out
}

// Lookup finds a chord template by name or alias
func Lookup(key string) (Chord, bool) {
	cat := getCatalog()
	if idx, ok := byKey[strings.TrimSpace(key)]; ok {
		return cat[idx], true
	}
	return Chord{}, false
}

// ForScale lists the chords whose pitch classes are all contained in
// the given root-relative scale signature
func ForScale(s pcset.Set) []string {
	var out []string
	for _, c := range getCatalog() {
		if c.Set.IsSubsetOf(s) {
			out = append(out, c.Name)
		}
	}
	return out
}
