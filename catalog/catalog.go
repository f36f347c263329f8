// ABOUTME: Catalog source abstraction for key/tempo lookups
// ABOUTME: Local files, tagged music directories and remote APIs behind one interface

// Package catalog provides candidate-producing sources of authoritative
// key/tempo records. Every source answers the same question: given a track
// title and artist, which catalog entries might describe that track?
package catalog

import (
	"context"

	"harmonic-sorter/playlist"
)

// Source produces catalog candidates for a title/artist query. The engine
// treats a static file and a remote lookup identically behind this contract.
// Implementations must be safe for concurrent use; lookups may be issued from
// multiple goroutines at once.
type Source interface {
	Lookup(ctx context.Context, title, artist string) ([]playlist.CatalogEntry, error)
}
