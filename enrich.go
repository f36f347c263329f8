// ABOUTME: Enrichment driver that resolves key/tempo for every input track
// ABOUTME: Fans catalog lookups out over a worker pool, collecting by position

package main

import (
	"context"

	"harmonic-sorter/catalog"
	"harmonic-sorter/playlist"
	"harmonic-sorter/pool"
)

// enrichTracks resolves each input track against the catalog source. Lookups
// run concurrently, but results are stored by original position, so lookup
// completion order can never leak into track order. Lookup failures and
// no-matches degrade the track to unresolved; they never abort the run.
func enrichTracks(ctx context.Context, tracks []playlist.InputTrack, source catalog.Source,
	weights playlist.ScoreWeights, workers int) []playlist.ResolvedTrack {
	resolved := make([]playlist.ResolvedTrack, len(tracks))

	workerPool := pool.NewWorkerPool(workers, len(tracks))
	defer workerPool.Close()

	for i, track := range tracks {
		i, track := i, track

		workerPool.Submit(func() {
			resolved[i] = resolveTrack(ctx, track, source, weights)
		})
	}

	workerPool.Wait()

	return resolved
}

// resolveTrack resolves one track, or leaves it unresolved.
func resolveTrack(ctx context.Context, track playlist.InputTrack, source catalog.Source,
	weights playlist.ScoreWeights) playlist.ResolvedTrack {
	result := playlist.ResolvedTrack{InputTrack: track}

	candidates, err := source.Lookup(ctx, track.Title, track.Artist)
	if err != nil {
		debugf("lookup failed for %s - %s: %v", track.Artist, track.Title, err)

		return result
	}

	best := playlist.FindBestMatch(track, candidates, weights)
	if best == nil {
		debugf("no match for %s - %s (%d candidates)", track.Artist, track.Title, len(candidates))

		return result
	}

	result.Resolution = playlist.ResolveEntry(best)
	if result.Resolution == nil {
		debugf("matched entry for %s - %s has no usable key/tempo", track.Artist, track.Title)
	}

	return result
}
