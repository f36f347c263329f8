// ABOUTME: Text normalization for fuzzy metadata comparison
// ABOUTME: Folds accents, musical accidentals, casing, quotes and whitespace

package playlist

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and discards the combining marks,
// so "Maldición" compares equal to "Maldicion".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// asciiReplacer maps musical accidentals and curly quotes to their ASCII
// equivalents. Parenthetical content is kept as-is since it often carries
// matching signal (e.g. "(Remix)").
var asciiReplacer = strings.NewReplacer(
	"♯", "#", // sharp sign
	"♭", "b", // flat sign
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize folds a metadata string into canonical comparison form. The
// pipeline is: strip accent marks, replace accidental and quote glyphs with
// ASCII, lowercase, collapse whitespace runs and trim. It never fails and is
// idempotent; unrecognized characters pass through unchanged.
func Normalize(text string) string {
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Transform errors leave the input usable, keep going with the original
		folded = text
	}

	folded = asciiReplacer.Replace(folded)
	folded = strings.ToLower(folded)

	return strings.Join(strings.Fields(folded), " ")
}
