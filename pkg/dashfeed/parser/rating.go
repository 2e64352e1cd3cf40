package parser

import (
	"strings"
	"unicode"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

// ratingTable maps lower-cased source labels onto the RAG taxonomy. The sets
// are disjoint, so lookup order does not matter.
var ratingTable = map[string]string{
	"red":    "Red",
	"r":      "Red",
	"high":   "Red",
	"amber":  "Amber",
	"orange": "Amber",
	"a":      "Amber",
	"medium": "Amber",
	"med":    "Amber",
	"green":  "Green",
	"g":      "Green",
	"low":    "Green",
}

// NormaliseRating maps a free-text severity label onto {Red, Amber, Green}.
// Blank cells stay blank; unrecognized labels fall back to Title Case so the
// dashboard still gets a stable rendering ("BLOCKED" -> "Blocked").
func NormaliseRating(v models.Value) string {
	s := strings.TrimSpace(AsText(v))
	if s == "" {
		return ""
	}
	if canonical, ok := ratingTable[strings.ToLower(s)]; ok {
		return canonical
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
