// ABOUTME: Tests for metadata text normalization
// ABOUTME: Verifies accent folding, accidental replacement and idempotence

package playlist

import "testing"

// TestNormalize verifies the full folding pipeline
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accents stripped", "Maldición", "maldicion"},
		{"sharp glyph", "F♯ Anthem", "f# anthem"},
		{"flat glyph", "B♭ Groove", "bb groove"},
		{"case folded", "SONG Title", "song title"},
		{"whitespace collapsed", "  The   Beatles  ", "the beatles"},
		{"curly quotes", "Don’t “Stop”", `don't "stop"`},
		{"parenthetical kept", "Song (Remix)", "song (remix)"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"mixed accents and spacing", "  Beyoncé   FEAT.  Jay ", "beyonce feat. jay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent verifies normalizing twice yields the same string
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Maldición",
		"F♯ Anthem (Club ‘Mix’)",
		"  Drake,   Future ",
		"already normalized",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
