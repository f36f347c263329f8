// ABOUTME: Tests for sort key construction and the ordering engine
// ABOUTME: Verifies stable harmonic ordering and unresolved fallback placement

package playlist

import "testing"

func resolved(id string, position int, camelot string, tempo float64) ResolvedTrack {
	pitch, modality, err := FromCamelot(camelot)
	if err != nil {
		panic(err)
	}

	return ResolvedTrack{
		InputTrack: InputTrack{ID: id, Title: id, Position: position},
		Resolution: &Resolution{
			PitchClass: pitch,
			Modality:   modality,
			Tempo:      tempo,
			Camelot:    ToCamelot(pitch, modality),
		},
	}
}

func unresolvedTrack(id string, position int) ResolvedTrack {
	return ResolvedTrack{InputTrack: InputTrack{ID: id, Title: id, Position: position}}
}

func assertOrder(t *testing.T, got []ResolvedTrack, wantIDs []string) {
	t.Helper()

	if len(got) != len(wantIDs) {
		t.Fatalf("got %d tracks, want %d", len(got), len(wantIDs))
	}

	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

// TestOrderTempoAndFallback verifies tempo ordering and the unresolved tail
func TestOrderTempoAndFallback(t *testing.T) {
	tracks := []ResolvedTrack{
		resolved("fast", 0, "2B", 120),
		resolved("slow", 1, "2B", 100),
		unresolvedTrack("unknown", 2),
	}

	got := Order(tracks, SortByCamelot)
	assertOrder(t, got, []string{"slow", "fast", "unknown"})
}

// TestOrderCamelotMode verifies the (number, letter, tempo) ordering
func TestOrderCamelotMode(t *testing.T) {
	tracks := []ResolvedTrack{
		resolved("d", 0, "8B", 120),
		resolved("c", 1, "8A", 140),
		resolved("a", 2, "1A", 90),
		resolved("b", 3, "8A", 120),
	}

	// 1A < 8A (letter A before B within a number), tempo last
	got := Order(tracks, SortByCamelot)
	assertOrder(t, got, []string{"a", "b", "c", "d"})
}

// TestOrderPitchMode verifies (pitch class, minor before major, tempo)
func TestOrderPitchMode(t *testing.T) {
	tracks := []ResolvedTrack{
		// 8B is C major (pitch 0), 5A is C minor (pitch 0), 3B is Db major (pitch 1)
		resolved("dbMajor", 0, "3B", 100),
		resolved("cMajor", 1, "8B", 100),
		resolved("cMinor", 2, "5A", 100),
	}

	got := Order(tracks, SortByPitch)
	assertOrder(t, got, []string{"cMinor", "cMajor", "dbMajor"})
}

// TestOrderUnresolvedKeepRelativeOrder verifies interspersed unresolved
// tracks come out strictly in their original relative order
func TestOrderUnresolvedKeepRelativeOrder(t *testing.T) {
	tracks := []ResolvedTrack{
		unresolvedTrack("u1", 0),
		resolved("r2", 1, "9B", 174),
		unresolvedTrack("u2", 2),
		resolved("r1", 3, "3A", 140),
		unresolvedTrack("u3", 4),
	}

	got := Order(tracks, SortByCamelot)
	assertOrder(t, got, []string{"r1", "r2", "u1", "u2", "u3"})
}

// TestOrderStability verifies equal keys preserve original input order
func TestOrderStability(t *testing.T) {
	tracks := []ResolvedTrack{
		resolved("first", 0, "6A", 128),
		resolved("second", 1, "6A", 128),
		resolved("third", 2, "6A", 128),
	}

	got := Order(tracks, SortByCamelot)
	assertOrder(t, got, []string{"first", "second", "third"})
}

// TestOrderEmpty verifies the engine handles empty and all-unresolved inputs
func TestOrderEmpty(t *testing.T) {
	if got := Order(nil, SortByCamelot); len(got) != 0 {
		t.Errorf("expected empty result, got %d tracks", len(got))
	}

	tracks := []ResolvedTrack{unresolvedTrack("a", 0), unresolvedTrack("b", 1)}

	got := Order(tracks, SortByCamelot)
	assertOrder(t, got, []string{"a", "b"})
}

// TestBuildKeyUnresolved verifies unresolved tracks produce no sort key
func TestBuildKeyUnresolved(t *testing.T) {
	if _, ok := BuildKey(unresolvedTrack("u", 0), SortByCamelot); ok {
		t.Error("expected no sort key for unresolved track")
	}
}

// TestResolveEntry verifies catalog entries convert to resolutions
func TestResolveEntry(t *testing.T) {
	tests := []struct {
		name        string
		entry       CatalogEntry
		wantCamelot string // empty means expect nil resolution
	}{
		{"camelot label", CatalogEntry{BPM: 128, KeyCamelot: "8A"}, "8A"},
		{"raw key string", CatalogEntry{BPM: 128, Key: "Am"}, "8A"},
		{"camelot in raw field", CatalogEntry{BPM: 128, Key: "5B"}, "5B"},
		{"no tempo", CatalogEntry{KeyCamelot: "8A"}, ""},
		{"no key", CatalogEntry{BPM: 128}, ""},
		{"garbage key", CatalogEntry{BPM: 128, Key: "???"}, ""},
		{"bad camelot falls through to raw", CatalogEntry{BPM: 128, KeyCamelot: "99Z", Key: "C"}, "8B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveEntry(&tt.entry)

			if tt.wantCamelot == "" {
				if res != nil {
					t.Errorf("expected nil resolution, got %+v", res)
				}

				return
			}

			if res == nil {
				t.Fatal("expected resolution, got nil")
			}

			if res.Camelot.String() != tt.wantCamelot {
				t.Errorf("camelot = %s, want %s", res.Camelot, tt.wantCamelot)
			}
		})
	}
}
