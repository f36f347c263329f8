// ABOUTME: Sort key construction and the ordering engine
// ABOUTME: Stable harmonic sort of resolved tracks with unresolved tracks appended

package playlist

import "sort"

// SortMode selects which total order is built over resolved tracks.
type SortMode string

const (
	// SortByCamelot orders by Camelot wheel number, then letter (A before B),
	// then tempo. Neighbouring positions are harmonically compatible.
	SortByCamelot SortMode = "camelot"
	// SortByPitch orders by raw pitch class, then modality (minor before
	// major), then tempo.
	SortByPitch SortMode = "pitch"
)

// SortKey is a comparable ordering key for a resolved track.
type SortKey struct {
	Primary   int     // Camelot number or pitch class
	Secondary int     // 0 for A/minor, 1 for B/major
	Tempo     float64 // Beats per minute
}

// Less reports whether k orders before other.
func (k SortKey) Less(other SortKey) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}

	if k.Secondary != other.Secondary {
		return k.Secondary < other.Secondary
	}

	return k.Tempo < other.Tempo
}

// BuildKey produces the ordering key for a resolved track. The second return
// is false for unresolved tracks, which have no place in the sorted order.
func BuildKey(track ResolvedTrack, mode SortMode) (SortKey, bool) {
	res := track.Resolution
	if res == nil {
		return SortKey{}, false
	}

	if mode == SortByPitch {
		secondary := 1
		if res.Modality == Minor {
			secondary = 0
		}

		return SortKey{Primary: res.PitchClass, Secondary: secondary, Tempo: res.Tempo}, true
	}

	secondary := 0
	if res.Camelot.Letter == "B" {
		secondary = 1
	}

	return SortKey{Primary: res.Camelot.Number, Secondary: secondary, Tempo: res.Tempo}, true
}

// Order produces the final track sequence: resolved tracks stably sorted by
// their sort key, followed by unresolved tracks in their original relative
// order. The partition happens before the sort so that "unknown" is never
// treated as a sortable value and unresolved tracks can never interleave with
// the sorted ones. Equal sort keys keep original input order.
func Order(tracks []ResolvedTrack, mode SortMode) []ResolvedTrack {
	resolved := make([]ResolvedTrack, 0, len(tracks))
	unresolved := make([]ResolvedTrack, 0)

	for _, track := range tracks {
		if track.Resolved() {
			resolved = append(resolved, track)
		} else {
			unresolved = append(unresolved, track)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		a, _ := BuildKey(resolved[i], mode)
		b, _ := BuildKey(resolved[j], mode)

		return a.Less(b)
	})

	return append(resolved, unresolved...)
}
