// ABOUTME: Remote catalog source backed by the getsongbpm search API
// ABOUTME: Per-track HTTP lookups returning candidate key/tempo records

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"harmonic-sorter/playlist"
)

const (
	defaultGetSongBaseURL = "https://api.getsong.co"
	defaultGetSongLimit   = 5
	getSongTimeout        = 10 * time.Second
)

// GetSongClient queries the getsongbpm search API for key/tempo candidates.
type GetSongClient struct {
	baseURL string
	apiKey  string
	limit   int
	http    *http.Client
}

// GetSongOption customises the client.
type GetSongOption func(*GetSongClient)

// WithGetSongBaseURL overrides the API endpoint (primarily for tests).
func WithGetSongBaseURL(baseURL string) GetSongOption {
	return func(c *GetSongClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithGetSongLimit sets how many candidates a lookup may return.
func WithGetSongLimit(limit int) GetSongOption {
	return func(c *GetSongClient) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithGetSongHTTPClient overrides the underlying HTTP client.
func WithGetSongHTTPClient(client *http.Client) GetSongOption {
	return func(c *GetSongClient) {
		if client != nil {
			c.http = client
		}
	}
}

// NewGetSongClient constructs a client. The API key is required; it is
// injected here rather than read from ambient state.
func NewGetSongClient(apiKey string, opts ...GetSongOption) (*GetSongClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("getsongbpm api key is required")
	}

	client := &GetSongClient{
		baseURL: defaultGetSongBaseURL,
		apiKey:  apiKey,
		limit:   defaultGetSongLimit,
		http:    &http.Client{Timeout: getSongTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// getSongResponse mirrors the /search/ payload. The search field is an array
// of songs on success but an error object when nothing was found, so it is
// decoded leniently.
type getSongResponse struct {
	Search json.RawMessage `json:"search"`
}

type getSongSong struct {
	Title  string        `json:"title"`
	Artist getSongArtist `json:"artist"`
	Tempo  string        `json:"tempo"`
	KeyOf  string        `json:"key_of"`
}

type getSongArtist struct {
	Name string `json:"name"`
}

// Lookup queries the search endpoint with a combined song/artist lookup and
// converts the results into catalog entries. An empty result set is not an
// error; callers treat both the same way.
func (c *GetSongClient) Lookup(ctx context.Context, title, artist string) ([]playlist.CatalogEntry, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("type", "both")
	query.Set("lookup", fmt.Sprintf("song:%s artist:%s", title, artist))
	query.Set("limit", strconv.Itoa(c.limit))

	endpoint := c.baseURL + "/search/?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var payload getSongResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var songs []getSongSong
	if err := json.Unmarshal(payload.Search, &songs); err != nil {
		// "search" is an error object when there are no hits
		return nil, nil
	}

	entries := make([]playlist.CatalogEntry, 0, len(songs))

	for _, song := range songs {
		if song.Title == "" || song.Artist.Name == "" {
			continue
		}

		tempo, _ := strconv.ParseFloat(song.Tempo, 64)

		entries = append(entries, playlist.CatalogEntry{
			Title:  song.Title,
			Artist: song.Artist.Name,
			BPM:    tempo,
			Key:    song.KeyOf,
		})
	}

	return entries, nil
}
