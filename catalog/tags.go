// ABOUTME: Catalog built from audio file tags in a local music directory
// ABOUTME: Reads ID3/Vorbis metadata including BPM frames and Camelot key comments

package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"harmonic-sorter/playlist"
)

// Audio extensions worth probing for tags.
var audioExtensions = map[string]bool{
	".mp3": true, ".m4a": true, ".mp4": true,
	".flac": true, ".ogg": true, ".wav": true,
}

// Camelot key embedded in the comment field, format: "8A - Energy 6"
var commentKeyRegex = regexp.MustCompile(`(\d+[AB])\s*-\s*Energy`)

// TagCatalog is a catalog assembled by scanning a music directory and reading
// key/tempo data out of the files' own tags.
type TagCatalog struct {
	byTitle map[string][]playlist.CatalogEntry
	size    int
}

// ScanTagCatalog walks a music directory and builds a catalog from file tags.
// Files that cannot be opened or carry no readable tags are skipped.
func ScanTagCatalog(dir string) (*TagCatalog, error) {
	catalog := &TagCatalog{byTitle: make(map[string][]playlist.CatalogEntry)}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		entry, err := readTagEntry(path)
		if err != nil {
			return nil // unreadable file, not fatal
		}

		if entry.Title == "" || entry.Artist == "" {
			return nil
		}

		title := playlist.Normalize(entry.Title)
		catalog.byTitle[title] = append(catalog.byTitle[title], entry)
		catalog.size++

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan music directory: %w", err)
	}

	return catalog, nil
}

// Len returns the number of usable entries in the catalog.
func (c *TagCatalog) Len() int {
	return c.size
}

// Lookup returns every entry whose normalized title matches.
func (c *TagCatalog) Lookup(_ context.Context, title, _ string) ([]playlist.CatalogEntry, error) {
	return c.byTitle[playlist.Normalize(title)], nil
}

// readTagEntry reads one audio file's tags into a catalog entry.
func readTagEntry(path string) (playlist.CatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return playlist.CatalogEntry{}, fmt.Errorf("failed to open file: %w", err)
	}

	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return playlist.CatalogEntry{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	entry := playlist.CatalogEntry{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
	}

	// BPM lives in format-specific raw frames
	if raw := metadata.Raw(); raw != nil {
		for _, key := range []string{"BPM", "TBPM", "bpm", "tempo"} {
			if val, exists := raw[key]; exists {
				switch v := val.(type) {
				case string:
					entry.BPM, _ = strconv.ParseFloat(v, 64)
				case int:
					entry.BPM = float64(v)
				case float64:
					entry.BPM = v
				}

				if entry.BPM > 0 {
					break
				}
			}
		}
	}

	// Mixed In Key style comment, e.g. "8A - Energy 6"
	if matches := commentKeyRegex.FindStringSubmatch(metadata.Comment()); len(matches) > 1 {
		entry.KeyCamelot = matches[1]
	}

	return entry, nil
}
