package theory

import "strings"

// Tokenize splits free text like "C major", "eb4 minor blues" or
// "pentatonic" into a tonic note name and a scale type name. When the
// first field is not a parsable note the whole input is the type name.
func Tokenize(input string) (tonic, typeName string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", ""
	}
	if ParseNote(fields[0]).Valid {
		return fields[0], strings.Join(fields[1:], " ")
	}
	return "", strings.TrimSpace(input)
}
