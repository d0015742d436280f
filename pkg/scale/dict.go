// Package scale implements the scale dictionary and derivation engine
package scale

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/anthropics/ascalekit/pkg/pcset"
	"github.com/anthropics/ascalekit/pkg/theory"
)

// Type is one immutable scale dictionary entry
type Type struct {
	Name      string
	Aliases   []string
	Intervals []theory.Interval // Ordered ascending, first the unison
	Set       pcset.Set
}

// dictionary holds the strongly-typed lookup tables. Names, aliases,
// fingerprints and chroma strings each live in their own map so keys
// from different spaces can never collide with each other.
type dictionary struct {
	types    []Type // Insertion order of the template list
	byName   map[string]int
	byAlias  map[string]int
	byNum    map[int]int
	byChroma map[string]int
}

var (
	dictOnce sync.Once
	dict     *dictionary
)

// getDict builds the dictionary on first use. The template list is
// static data, so a formula the interval parser rejects is corrupted
// source and aborts construction.
func getDict() *dictionary {
	dictOnce.Do(func() {
		d := &dictionary{
			byName:   make(map[string]int),
			byAlias:  make(map[string]int),
			byNum:    make(map[int]int),
			byChroma: make(map[string]int),
		}
		for _, tpl := range templates {
			t := Type{Name: tpl.name, Aliases: tpl.aliases}
			for _, tok := range strings.Fields(tpl.intervals) {
				iv := theory.ParseInterval(tok)
				if !iv.Valid {
					panic(fmt.Sprintf("scale: bad interval %q in template %q", tok, tpl.name))
				}
				t.Intervals = append(t.Intervals, iv)
			}
			t.Set = pcset.FromIntervals(t.Intervals)
			if t.Set.Count() != len(t.Intervals) {
				panic(fmt.Sprintf("scale: template %q has duplicate pitch classes", tpl.name))
			}

			idx := len(d.types)
			d.types = append(d.types, t)
			if _, dup := d.byName[t.Name]; dup {
				panic(fmt.Sprintf("scale: duplicate template name %q", t.Name))
			}
			d.byName[t.Name] = idx
			for _, a := range t.Aliases {
				if _, dup := d.byAlias[a]; dup {
					panic(fmt.Sprintf("scale: duplicate alias %q", a))
				}
				d.byAlias[a] = idx
			}
			// First registered wins on enharmonically identical sets
			if _, taken := d.byNum[t.Set.Num()]; !taken {
				d.byNum[t.Set.Num()] = idx
				d.byChroma[t.Set.Chroma()] = idx
			}
		}
		dict = d
	})
	return dict
}

// Types returns all scale types in registration order
func Types() []Type {
	d := getDict()
	out := make([]Type, len(d.types))
	copy(out, d.types)
	return out
}

// LookupType finds a scale type by canonical name, alias, chroma
// string or decimal fingerprint. Lookup is a pure map read.
func LookupType(key string) (Type, bool) {
	d := getDict()
	key = strings.TrimSpace(key)
	if idx, ok := d.byName[key]; ok {
		return d.types[idx], true
	}
	if idx, ok := d.byAlias[key]; ok {
		return d.types[idx], true
	}
	if len(key) == 12 {
		if idx, ok := d.byChroma[key]; ok {
			return d.types[idx], true
		}
	}
	if num, err := strconv.Atoi(key); err == nil {
		return LookupTypeNum(num)
	}
	return Type{}, false
}

// LookupTypeNum finds a scale type by numeric fingerprint. When two
// templates share a fingerprint the first registered one is returned.
func LookupTypeNum(num int) (Type, bool) {
	d := getDict()
	if idx, ok := d.byNum[num]; ok {
		return d.types[idx], true
	}
	return Type{}, false
}

// lookupSet finds the type registered for an exact pitch-class set
func lookupSet(s pcset.Set) (Type, bool) {
	d := getDict()
	if idx, ok := d.byChroma[s.Chroma()]; ok {
		return d.types[idx], true
	}
	return Type{}, false
}
