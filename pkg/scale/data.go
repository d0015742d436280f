package scale

// template is one raw dictionary entry: an interval formula (ordered
// ascending, first entry the unison), a canonical name and aliases.
// Order matters: fingerprint lookups resolve collisions to the entry
// registered first ("bebop dominant" and "bebop" share one pattern).
type template struct {
	intervals string
	name      string
	aliases   []string
}

var templates = []template{
	// Pentatonics
	{"1P 2M 3M 5P 6M", "major pentatonic", []string{"pentatonic"}},
	{"1P 3m 4P 5P 7m", "minor pentatonic", nil},
	{"1P 2M 4P 5P 7m", "egyptian", nil},
	{"1P 2M 4P 5P 6M", "ritusen", nil},
	{"1P 2M 3m 5P 6m", "hirajoshi", nil},
	{"1P 2m 4P 5P 6m", "kumoijoshi", nil},
	{"1P 2m 4P 5d 7m", "iwato", nil},
	{"1P 2m 4P 5P 7m", "in-sen", nil},
	{"1P 3M 4A 5P 7M", "chinese", nil},
	{"1P 2M 3m 5P 6M", "kumoi", nil},
	{"1P 3m 4P 5d 7m", "locrian pentatonic", nil},
	{"1P 3m 4P 5P 6M", "minor six pentatonic", nil},
	{"1P 3M 4P 5P 7m", "mixolydian pentatonic", []string{"indian"}},
	{"1P 2m 3M 5P 6M", "scriabin", nil},
	{"1P 3M 4A 5P 7m", "lydian dominant pentatonic", nil},

	// Hexatonics
	{"1P 2M 3m 3M 5P 6M", "major blues", nil},
	{"1P 3m 4P 5d 5P 7m", "minor blues", []string{"blues"}},
	{"1P 2M 3M 4A 5A 7m", "whole tone", []string{"messiaen's mode #1"}},
	{"1P 2A 3M 5P 5A 7M", "augmented", nil},
	{"1P 2M 3M 4A 6M 7m", "prometheus", nil},
	{"1P 2M 3m 4P 5P 7M", "minor hexatonic", nil},
	{"1P 2M 4P 5P 6M 7m", "piongio", nil},

	// Heptatonics: diatonic modes
	{"1P 2M 3M 4P 5P 6M 7M", "major", []string{"ionian"}},
	{"1P 2M 3m 4P 5P 6M 7m", "dorian", nil},
	{"1P 2m 3m 4P 5P 6m 7m", "phrygian", nil},
	{"1P 2M 3M 4A 5P 6M 7M", "lydian", nil},
	{"1P 2M 3M 4P 5P 6M 7m", "mixolydian", []string{"dominant"}},
	{"1P 2M 3m 4P 5P 6m 7m", "aeolian", []string{"minor", "natural minor"}},
	{"1P 2m 3m 4P 5d 6m 7m", "locrian", nil},

	// Heptatonics: harmonic and melodic variants
	{"1P 2M 3m 4P 5P 6m 7M", "harmonic minor", nil},
	{"1P 2M 3m 4P 5P 6M 7M", "melodic minor", []string{"jazz minor"}},
	{"1P 2M 3M 4P 5P 6m 7M", "harmonic major", nil},
	{"1P 2m 3M 4P 5P 6m 7M", "double harmonic major", []string{"gypsy", "byzantine"}},
	{"1P 2M 3m 4A 5P 6m 7M", "hungarian minor", nil},
	{"1P 2A 3M 4A 5P 6M 7m", "hungarian major", nil},
	{"1P 2m 3M 4P 5P 6m 7m", "phrygian dominant", []string{"spanish", "phrygian major"}},
	{"1P 2M 3m 4A 5P 6M 7m", "dorian #4", []string{"romanian minor"}},
	{"1P 2M 3M 4A 5P 6M 7m", "lydian dominant", []string{"lydian b7"}},
	{"1P 2M 3M 4A 5A 6M 7M", "lydian augmented", nil},
	{"1P 2M 3m 4A 5P 6M 7M", "lydian diminished", nil},
	{"1P 2M 3m 4P 5d 6m 7m", "locrian #2", []string{"half-diminished"}},
	{"1P 2m 3m 3M 5d 6m 7m", "altered", []string{"super locrian", "diminished whole tone"}},
	{"1P 2M 3M 4P 5P 6m 7m", "mixolydian b6", []string{"melodic major"}},
	{"1P 2M 3M 4P 5d 6m 7m", "locrian major", []string{"arabian"}},
	{"1P 2m 3m 4P 5P 6M 7m", "dorian b2", []string{"phrygian #6"}},
	{"1P 2m 3m 4P 5P 6M 7M", "neopolitan major", nil},
	{"1P 2m 3m 4P 5P 6m 7M", "neopolitan minor", nil},
	{"1P 2m 3M 4P 5d 6M 7m", "oriental", nil},
	{"1P 2m 3M 4P 5d 6m 7M", "persian", nil},
	{"1P 2m 3M 4A 5P 6m 7M", "todi raga", nil},
	{"1P 2m 3M 5d 6m 7m 7M", "enigmatic", nil},

	// Octatonics and beyond
	{"1P 2M 3M 4P 5P 6M 7m 7M", "bebop dominant", nil},
	{"1P 2M 3M 4P 5P 6M 7m 7M", "bebop", nil},
	{"1P 2M 3m 3M 4P 5P 6M 7m", "bebop minor", nil},
	{"1P 2M 3M 4P 5P 6m 6M 7M", "bebop major", nil},
	{"1P 2M 3m 4P 5d 6m 6M 7M", "diminished", []string{"whole-half diminished"}},
	{"1P 2m 3m 3M 4A 5P 6M 7m", "dominant diminished", []string{"half-whole diminished", "messiaen's mode #2"}},
	{"1P 2m 2M 3m 3M 4P 4A 5P 6m 6M 7m 7M", "chromatic", nil},
}
