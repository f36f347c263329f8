// ABOUTME: Musical key parsing and Camelot wheel translation
// ABOUTME: Maps pitch-class plus modality to and from Camelot labels like 8A

package playlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CamelotKey represents a parsed Camelot key
type CamelotKey struct {
	Letter string // "A" (minor) or "B" (major)
	Number int    // 1-12
}

// Compile regexes once at package initialization
var (
	camelotKeyRegex = regexp.MustCompile(`^(\d+)\s*([AB])$`)
	rootNoteRegex   = regexp.MustCompile(`^([a-g])([#b]?)`)
)

// Standard Camelot wheel assignment. Adjacent numbers are a perfect fifth
// apart, and each number pairs a major key with its relative minor, so the
// tables below must match the published wheel exactly, not just form a
// bijection. Index is pitch class (C=0 ... B=11), value is the wheel number.
var (
	majorWheelNumber = [12]int{8, 3, 10, 5, 12, 7, 2, 9, 4, 11, 6, 1}
	minorWheelNumber = [12]int{5, 12, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10}
)

// Inverse tables: index is wheel number - 1, value is pitch class.
var (
	majorWheelPitch = [12]int{11, 6, 1, 8, 3, 10, 5, 0, 7, 2, 9, 4}
	minorWheelPitch = [12]int{8, 3, 10, 5, 0, 7, 2, 9, 4, 11, 6, 1}
)

// Semitone offsets of the natural notes A-G relative to C.
var naturalPitch = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// ParseCamelotKey parses a Camelot key string like "8A" into structured form
// Returns error if the key format is invalid
func ParseCamelotKey(key string) (*CamelotKey, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(key))
	if trimmed == "" {
		return nil, fmt.Errorf("empty key")
	}

	matches := camelotKeyRegex.FindStringSubmatch(trimmed)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid key format: %s", key)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil || number < 1 || number > 12 {
		return nil, fmt.Errorf("invalid key number: %s", matches[1])
	}

	return &CamelotKey{
		Letter: matches[2],
		Number: number,
	}, nil
}

// String returns the string representation of a CamelotKey
func (k CamelotKey) String() string {
	if k.Number == 0 {
		return ""
	}

	return fmt.Sprintf("%d%s", k.Number, k.Letter)
}

// ToCamelot maps a pitch class and modality to its Camelot wheel label.
// Panics if pitch is outside 0-11, which indicates a caller bug: every pitch
// produced by ParseKey or FromCamelot is already in range.
func ToCamelot(pitch int, modality Modality) CamelotKey {
	if pitch < 0 || pitch > 11 {
		panic(fmt.Sprintf("pitch class out of range: %d", pitch))
	}

	if modality == Minor {
		return CamelotKey{Letter: "A", Number: minorWheelNumber[pitch]}
	}

	return CamelotKey{Letter: "B", Number: majorWheelNumber[pitch]}
}

// FromCamelot parses a Camelot label and returns the pitch class and modality
// it stands for. The letter carries the modality: A is minor, B is major.
func FromCamelot(label string) (int, Modality, error) {
	key, err := ParseCamelotKey(label)
	if err != nil {
		return 0, Major, err
	}

	if key.Letter == "A" {
		return minorWheelPitch[key.Number-1], Minor, nil
	}

	return majorWheelPitch[key.Number-1], Major, nil
}

// ParseKey parses a raw key string such as "F#m", "Db major" or "a minor"
// into a pitch class and modality. Unicode accidentals are folded first, so
// "F♯" parses the same as "F#". The modality is minor when the text after the
// root note starts with "m" but does not spell "maj"; absence of any suffix
// means major. Returns an error when no root-note token is found; callers
// treat that as "key unknown", not as a fault.
func ParseKey(raw string) (int, Modality, error) {
	cleaned := Normalize(raw)
	if cleaned == "" {
		return 0, Major, fmt.Errorf("empty key string")
	}

	matches := rootNoteRegex.FindStringSubmatch(cleaned)
	if matches == nil {
		return 0, Major, fmt.Errorf("no root note in key string: %q", raw)
	}

	pitch := naturalPitch[matches[1][0]]
	switch matches[2] {
	case "#":
		pitch = (pitch + 1) % 12
	case "b":
		pitch = (pitch + 11) % 12
	}

	rest := strings.TrimSpace(cleaned[len(matches[0]):])

	modality := Major
	if strings.HasPrefix(rest, "m") && !strings.HasPrefix(rest, "maj") {
		modality = Minor
	}

	return pitch, modality, nil
}
