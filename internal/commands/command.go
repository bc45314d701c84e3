package commands

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes verbs when they lead an error message.
var titleCaser = cases.Title(language.English)

// Command is one parsed line of player input.
type Command struct {
	Verb        string
	Object      string
	Preposition string
	Target      string

	// Raw is the original input, kept for error messages.
	Raw string
}

// prepositions is the closed set recognized by the parser, in match order.
var prepositions = map[string]bool{
	"in":      true,
	"on":      true,
	"at":      true,
	"to":      true,
	"with":    true,
	"under":   true,
	"behind":  true,
	"through": true,
	"from":    true,
}

// verbSynonyms maps player vocabulary to canonical verbs.
var verbSynonyms = map[string]string{
	"l":       "look",
	"x":       "examine",
	"inspect": "examine",
	"get":     "take",
	"grab":    "take",
	"pick":    "take",
	"place":   "put",
	"walk":    "go",
	"run":     "go",
	"switch":  "turn",
	"i":       "inventory",
	"inv":     "inventory",
}

// directionSynonyms maps abbreviations to canonical directions.
var directionSynonyms = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
	"u":  "up",
	"d":  "down",
}

// canonicalDirections is the full direction vocabulary.
var canonicalDirections = map[string]bool{
	"north":     true,
	"south":     true,
	"east":      true,
	"west":      true,
	"northeast": true,
	"northwest": true,
	"southeast": true,
	"southwest": true,
	"up":        true,
	"down":      true,
	"in":        true,
	"out":       true,
}

// NormalizeVerb resolves verb and direction synonyms to canonical words.
func NormalizeVerb(verb string) string {
	verb = strings.ToLower(verb)
	if canonical, ok := verbSynonyms[verb]; ok {
		return canonical
	}
	if canonical, ok := directionSynonyms[verb]; ok {
		return canonical
	}
	return verb
}

// IsDirection reports whether a word is a canonical direction after synonym
// normalization.
func IsDirection(word string) bool {
	if canonical, ok := directionSynonyms[word]; ok {
		word = canonical
	}
	return canonicalDirections[word]
}
