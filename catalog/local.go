// ABOUTME: Local JSON catalog loaded once at startup
// ABOUTME: Indexes entries by normalized title for cheap candidate lookups

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"harmonic-sorter/playlist"
)

// LocalCatalog is a static catalog read from a JSON file, typically
// local_db.json: an array of objects with name, artist, bpm and key_camelot
// fields. The entry set is immutable for the life of the catalog, so lookups
// need no synchronization.
type LocalCatalog struct {
	byTitle map[string][]playlist.CatalogEntry
	size    int
}

// LoadLocalCatalog reads and indexes a JSON catalog file. Entries missing a
// title or artist are skipped rather than failing the load.
func LoadLocalCatalog(path string) (*LocalCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []playlist.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	catalog := &LocalCatalog{byTitle: make(map[string][]playlist.CatalogEntry)}

	for _, entry := range entries {
		if entry.Title == "" || entry.Artist == "" {
			continue
		}

		title := playlist.Normalize(entry.Title)
		catalog.byTitle[title] = append(catalog.byTitle[title], entry)
		catalog.size++
	}

	return catalog, nil
}

// Len returns the number of usable entries in the catalog.
func (c *LocalCatalog) Len() int {
	return c.size
}

// Lookup returns every entry whose normalized title matches. The artist is
// left for the matcher to weigh; returning all same-title entries keeps
// partial artist matches (e.g. featured artists) in play.
func (c *LocalCatalog) Lookup(_ context.Context, title, _ string) ([]playlist.CatalogEntry, error) {
	return c.byTitle[playlist.Normalize(title)], nil
}
