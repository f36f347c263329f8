// ABOUTME: Playlist host client for reading tracks and writing back the new order
// ABOUTME: Token refresh, paged playlist reads and chunked reorder write-back

// Package spotify is the playlist host collaborator. It reads the ordered
// input tracks with paged requests and applies the final order in chunks of
// at most 100 identifiers, which is a fixed protocol constraint of the host.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"harmonic-sorter/playlist"
)

const (
	defaultAPIBaseURL  = "https://api.spotify.com"
	defaultTokenURL    = "https://accounts.spotify.com/api/token"
	pageSize           = 100
	writeChunkSize     = 100
	defaultHTTPTimeout = 15 * time.Second
)

// Credentials holds the OAuth client credentials and refresh token. They are
// read from the environment at process start and injected here, never from
// ambient state inside the client.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Validate reports whether all required credential fields are present.
func (c Credentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET and SPOTIFY_REFRESH_TOKEN must be set")
	}

	return nil
}

// Client talks to the playlist host API.
type Client struct {
	creds      Credentials
	apiBaseURL string
	tokenURL   string
	http       *http.Client

	mu    sync.Mutex
	token string
}

// Option customises the client.
type Option func(*Client)

// WithAPIBaseURL overrides the API endpoint (primarily for tests).
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.apiBaseURL = baseURL
		}
	}
}

// WithTokenURL overrides the token endpoint (primarily for tests).
func WithTokenURL(tokenURL string) Option {
	return func(c *Client) {
		if tokenURL != "" {
			c.tokenURL = tokenURL
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// NewClient constructs a playlist host client from injected credentials.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		creds:      creds,
		apiBaseURL: defaultAPIBaseURL,
		tokenURL:   defaultTokenURL,
		http:       &http.Client{Timeout: defaultHTTPTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

var playlistURLRegex = regexp.MustCompile(`playlist[/:]([A-Za-z0-9]+)`)

// ParsePlaylistID extracts a playlist identifier from a bare id, a
// spotify:playlist: URI or an open.spotify.com URL.
func ParsePlaylistID(arg string) (string, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return "", fmt.Errorf("empty playlist argument")
	}

	if matches := playlistURLRegex.FindStringSubmatch(trimmed); matches != nil {
		return matches[1], nil
	}

	if strings.ContainsAny(trimmed, "/:?") {
		return "", fmt.Errorf("no playlist id found in %q", arg)
	}

	return trimmed, nil
}

// ensureToken exchanges the refresh token for an access token once per run.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.creds.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	c.token = payload.AccessToken

	return c.token, nil
}

type playlistPage struct {
	Items []struct {
		Track struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			DurationMS int `json:"duration_ms"`
		} `json:"track"`
	} `json:"items"`
	Next string `json:"next"`
}

// PlaylistTracks reads the full playlist in pages of 100 and returns the
// tracks in playlist order with positions assigned. Items without a track id
// (local files, episodes) are skipped.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]playlist.InputTrack, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	var tracks []playlist.InputTrack

	for offset := 0; ; offset += pageSize {
		endpoint := fmt.Sprintf("%s/v1/playlists/%s/tracks?limit=%d&offset=%d",
			c.apiBaseURL, playlistID, pageSize, offset)

		var page playlistPage
		if err := c.getJSON(ctx, token, endpoint, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch playlist page at offset %d: %w", offset, err)
		}

		if len(page.Items) == 0 {
			break
		}

		for _, item := range page.Items {
			if item.Track.ID == "" {
				continue
			}

			artist := "Unknown"
			if len(item.Track.Artists) > 0 {
				artist = item.Track.Artists[0].Name
			}

			tracks = append(tracks, playlist.InputTrack{
				ID:         item.Track.ID,
				Title:      item.Track.Name,
				Artist:     artist,
				DurationMS: item.Track.DurationMS,
				Position:   len(tracks),
			})
		}

		if page.Next == "" {
			break
		}
	}

	return tracks, nil
}

// Reorder applies the final track order to the playlist. The first chunk
// replaces the playlist contents, subsequent chunks append; every request
// carries at most 100 track ids.
func (c *Client) Reorder(ctx context.Context, playlistID string, trackIDs []string) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v1/playlists/%s/tracks", c.apiBaseURL, playlistID)

	for start := 0; start < len(trackIDs); start += writeChunkSize {
		end := start + writeChunkSize
		if end > len(trackIDs) {
			end = len(trackIDs)
		}

		uris := make([]string, 0, end-start)
		for _, id := range trackIDs[start:end] {
			uris = append(uris, "spotify:track:"+id)
		}

		method := http.MethodPost
		if start == 0 {
			method = http.MethodPut
		}

		if err := c.sendJSON(ctx, token, method, endpoint, map[string][]string{"uris": uris}); err != nil {
			return fmt.Errorf("failed to write chunk starting at %d: %w", start, err)
		}
	}

	return nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// sendJSON performs an authenticated request with a JSON body.
func (c *Client) sendJSON(ctx context.Context, token, method, endpoint string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}

// ChunkCount returns how many write-back requests n track ids will take.
func ChunkCount(n int) int {
	if n == 0 {
		return 0
	}

	return (n + writeChunkSize - 1) / writeChunkSize
}
