// ABOUTME: Fuzzy matching of input tracks against authoritative catalog entries
// ABOUTME: Weighted scoring over artist, duration and title signals

package playlist

import "strings"

// ScoreWeights holds the match scoring policy. The defaults are a fixed,
// documented policy; configs may override them but should not need to.
type ScoreWeights struct {
	ExactArtist         int `toml:"exact_artist"`
	PartialArtist       int `toml:"partial_artist"`
	DurationMatch       int `toml:"duration_match"`
	DurationMismatch    int `toml:"duration_mismatch"`
	ExactTitle          int `toml:"exact_title"`
	DurationToleranceMS int `toml:"duration_tolerance_ms"`
}

// DefaultScoreWeights returns the documented scoring policy.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		ExactArtist:         100,
		PartialArtist:       80,
		DurationMatch:       50,
		DurationMismatch:    -50,
		ExactTitle:          20,
		DurationToleranceMS: 5000,
	}
}

// FindBestMatch returns the catalog entry that best matches the target track,
// or nil when no candidate scores positively. Candidates are first filtered
// to exact normalized-title equality; edit-distance fuzziness is deliberately
// avoided since it invites false positives between unrelated songs. Ties keep
// the first-seen candidate, so a deterministic candidate order gives a
// deterministic result. Malformed candidates (missing title or artist) are
// skipped, never fatal.
func FindBestMatch(target InputTrack, candidates []CatalogEntry, weights ScoreWeights) *CatalogEntry {
	targetTitle := Normalize(target.Title)
	targetArtist := Normalize(target.Artist)

	var best *CatalogEntry

	bestScore := 0

	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Title == "" || candidate.Artist == "" {
			continue
		}

		if Normalize(candidate.Title) != targetTitle {
			continue
		}

		score := scoreCandidate(target, targetArtist, candidate, weights)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}

// scoreCandidate accumulates the independent match signals for one candidate
// that already passed the normalized-title filter.
func scoreCandidate(target InputTrack, targetArtist string, candidate *CatalogEntry, weights ScoreWeights) int {
	score := 0

	candidateArtist := Normalize(candidate.Artist)

	switch {
	case candidateArtist == targetArtist:
		score += weights.ExactArtist
	case targetArtist != "" && (strings.Contains(candidateArtist, targetArtist) ||
		strings.Contains(targetArtist, candidateArtist)):
		// Handles "Drake" against "Drake, Future"
		score += weights.PartialArtist
	}

	if target.DurationMS > 0 && candidate.DurationMS > 0 {
		diff := target.DurationMS - candidate.DurationMS
		if diff < 0 {
			diff = -diff
		}

		if diff <= weights.DurationToleranceMS {
			score += weights.DurationMatch
		} else {
			// Large duration gaps usually mean a remix or radio edit
			score += weights.DurationMismatch
		}
	}

	if candidate.Title == target.Title {
		score += weights.ExactTitle
	}

	return score
}
