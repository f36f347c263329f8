// ABOUTME: Tests for the enrichment driver
// ABOUTME: Verifies positional result collection and failure degradation

package main

import (
	"context"
	"fmt"
	"testing"

	"harmonic-sorter/playlist"
)

// fakeSource returns canned candidates per normalized title
type fakeSource struct {
	entries map[string][]playlist.CatalogEntry
	fail    bool
}

func (s *fakeSource) Lookup(_ context.Context, title, _ string) ([]playlist.CatalogEntry, error) {
	if s.fail {
		return nil, fmt.Errorf("catalog unavailable")
	}

	return s.entries[playlist.Normalize(title)], nil
}

// TestEnrichTracksKeepsPositions verifies results land at their input positions
func TestEnrichTracksKeepsPositions(t *testing.T) {
	source := &fakeSource{entries: map[string][]playlist.CatalogEntry{
		"alpha": {{Title: "Alpha", Artist: "A", BPM: 120, KeyCamelot: "8A"}},
		"gamma": {{Title: "Gamma", Artist: "C", BPM: 140, KeyCamelot: "3B"}},
	}}

	tracks := []playlist.InputTrack{
		{ID: "1", Title: "Alpha", Artist: "A", Position: 0},
		{ID: "2", Title: "Beta", Artist: "B", Position: 1},
		{ID: "3", Title: "Gamma", Artist: "C", Position: 2},
	}

	enriched := enrichTracks(context.Background(), tracks, source, playlist.DefaultScoreWeights(), 3)

	if len(enriched) != 3 {
		t.Fatalf("expected 3 results, got %d", len(enriched))
	}

	for i, track := range enriched {
		if track.ID != tracks[i].ID {
			t.Errorf("position %d holds track %s, want %s", i, track.ID, tracks[i].ID)
		}
	}

	if !enriched[0].Resolved() || !enriched[2].Resolved() {
		t.Error("expected alpha and gamma to resolve")
	}

	if enriched[1].Resolved() {
		t.Error("beta has no catalog entry and must stay unresolved")
	}

	if got := enriched[0].Resolution.Camelot.String(); got != "8A" {
		t.Errorf("alpha camelot = %s, want 8A", got)
	}
}

// TestEnrichTracksLookupFailure verifies lookup errors degrade to unresolved
func TestEnrichTracksLookupFailure(t *testing.T) {
	source := &fakeSource{fail: true}

	tracks := []playlist.InputTrack{
		{ID: "1", Title: "Alpha", Artist: "A", Position: 0},
		{ID: "2", Title: "Beta", Artist: "B", Position: 1},
	}

	enriched := enrichTracks(context.Background(), tracks, source, playlist.DefaultScoreWeights(), 2)

	for i, track := range enriched {
		if track.Resolved() {
			t.Errorf("track %d resolved despite lookup failure", i)
		}

		if track.ID != tracks[i].ID {
			t.Errorf("position %d holds track %s, want %s", i, track.ID, tracks[i].ID)
		}
	}
}

// TestEnrichTracksMatchWithoutUsableKey verifies matched entries lacking
// key or tempo leave the track unresolved
func TestEnrichTracksMatchWithoutUsableKey(t *testing.T) {
	source := &fakeSource{entries: map[string][]playlist.CatalogEntry{
		"alpha": {{Title: "Alpha", Artist: "A", BPM: 0, KeyCamelot: "8A"}},
	}}

	tracks := []playlist.InputTrack{{ID: "1", Title: "Alpha", Artist: "A", Position: 0}}

	enriched := enrichTracks(context.Background(), tracks, source, playlist.DefaultScoreWeights(), 1)
	if enriched[0].Resolved() {
		t.Error("entry without tempo must not resolve the track")
	}
}
