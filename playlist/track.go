// ABOUTME: Defines the track and catalog data model used throughout the sorter
// ABOUTME: Input tracks, authoritative catalog entries and resolved key/tempo data

// Package playlist implements the track enrichment and harmonic sort engine.
// It resolves noisy track metadata against authoritative key/tempo records,
// translates musical keys between pitch-class and Camelot wheel notation, and
// produces a deterministic harmonically sorted order.
package playlist

import "fmt"

// Modality is the tonal quality of a key.
type Modality int

const (
	Major Modality = iota
	Minor
)

// String returns "major" or "minor".
func (m Modality) String() string {
	if m == Minor {
		return "minor"
	}

	return "major"
}

// InputTrack is one track read from the playlist host.
type InputTrack struct {
	ID         string // Opaque host identifier, used for write-back
	Title      string // Track title
	Artist     string // Primary artist name
	DurationMS int    // Duration in milliseconds (0 if unknown)
	Position   int    // Position in the original playlist order
}

// CatalogEntry is an authoritative key/tempo record from a catalog source.
// Entries are read-only once loaded; matching never mutates them.
type CatalogEntry struct {
	Title      string  `json:"name"`
	Artist     string  `json:"artist"`
	BPM        float64 `json:"bpm"`
	KeyCamelot string  `json:"key_camelot"` // Camelot label like "8A" (empty if unknown)
	Key        string  `json:"key"`         // Raw key string like "F#m" (empty if unknown)
	DurationMS int     `json:"duration_ms"` // 0 if unknown
}

// Resolution holds a fully resolved key/tempo triple. A track is either
// completely resolved (all fields set) or not resolved at all; partial data
// never produces a Resolution.
type Resolution struct {
	PitchClass int        // 0-11, C=0
	Modality   Modality   // Major or Minor
	Tempo      float64    // Beats per minute, > 0
	Camelot    CamelotKey // Camelot label for the pitch/modality pair
}

// ResolvedTrack pairs an input track with its optional resolution.
// A nil Resolution means the track sorts into the unresolved tail.
type ResolvedTrack struct {
	InputTrack
	Resolution *Resolution
}

// Resolved reports whether key and tempo were determined for this track.
func (t ResolvedTrack) Resolved() bool {
	return t.Resolution != nil
}

// String returns a formatted one-line representation of the track.
func (t ResolvedTrack) String() string {
	if t.Resolution == nil {
		return fmt.Sprintf("%-20s - %-30s Key: ?   BPM: ?", t.Artist, t.Title)
	}

	return fmt.Sprintf("%-20s - %-30s Key: %-3s BPM: %.0f",
		t.Artist, t.Title, t.Resolution.Camelot.String(), t.Resolution.Tempo)
}

// ResolveEntry converts a catalog entry into a Resolution. The Camelot label
// is tried first, then the raw key field, which some sources fill with a
// Camelot label as well. Returns nil when the entry has no usable key or no
// tempo; callers treat that track as unresolved.
func ResolveEntry(entry *CatalogEntry) *Resolution {
	if entry == nil || entry.BPM <= 0 {
		return nil
	}

	for _, raw := range []string{entry.KeyCamelot, entry.Key} {
		if raw == "" {
			continue
		}

		pitch, modality, err := FromCamelot(raw)
		if err != nil {
			pitch, modality, err = ParseKey(raw)
		}

		if err == nil {
			return &Resolution{
				PitchClass: pitch,
				Modality:   modality,
				Tempo:      entry.BPM,
				Camelot:    ToCamelot(pitch, modality),
			}
		}
	}

	return nil
}
