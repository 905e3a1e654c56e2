package weather

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizePlace canonicalizes a user-entered town name for the weather API:
// trims whitespace, strips diacritics ("Polokwané" -> "Polokwane"), and
// collapses internal whitespace runs to single spaces.
func NormalizePlace(place string) string {
	place = strings.TrimSpace(place)
	if place == "" {
		return ""
	}

	if folded, _, err := transform.String(diacriticRemover, place); err == nil {
		place = folded
	}

	return strings.Join(strings.Fields(place), " ")
}
