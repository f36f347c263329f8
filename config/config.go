// ABOUTME: Configuration management for the harmonic sorter
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads the sorter's TOML configuration: catalog source
// selection, sort mode, lookup concurrency and the match scoring policy.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"harmonic-sorter/playlist"
)

// Catalog source names accepted in the config and the -source flag.
const (
	SourceLocal   = "local"
	SourceTags    = "tags"
	SourceGetSong = "getsong"
)

// Config holds all tunable settings.
type Config struct {
	// Catalog selection
	Source   string `toml:"source"`    // local, tags or getsong
	Catalog  string `toml:"catalog"`   // path to local_db.json for the local source
	MusicDir string `toml:"music_dir"` // music directory for the tags source

	// Ordering
	SortBy string `toml:"sort_by"` // camelot or pitch

	// Remote lookups
	LookupWorkers int    `toml:"lookup_workers"` // concurrent per-track lookups
	GetSongURL    string `toml:"getsong_url"`    // override for the getsongbpm endpoint
	GetSongLimit  int    `toml:"getsong_limit"`  // candidates per remote lookup

	// Match scoring. Defaults are the documented policy; override with care.
	Scoring playlist.ScoreWeights `toml:"scoring"`
}

// DefaultConfig returns the default configuration. The scoring weights are
// the fixed documented policy (100/80/50/-50/20, 5000 ms tolerance).
func DefaultConfig() Config {
	return Config{
		Source:        SourceLocal,
		Catalog:       "local_db.json",
		SortBy:        string(playlist.SortByCamelot),
		LookupWorkers: 4,
		GetSongLimit:  5,
		Scoring:       playlist.DefaultScoreWeights(),
	}
}

// SortMode returns the configured sort mode, defaulting to Camelot ordering
// for unknown values.
func (c Config) SortMode() playlist.SortMode {
	if c.SortBy == string(playlist.SortByPitch) {
		return playlist.SortByPitch
	}

	return playlist.SortByCamelot
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/harmonic-sorter/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./harmonic-sorter.toml"); err == nil {
		return "./harmonic-sorter.toml"
	}

	// Then try ~/.config/harmonic-sorter/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./harmonic-sorter.toml"
	}

	return filepath.Join(home, ".config", "harmonic-sorter", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}

		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse over the defaults so omitted keys keep their documented values
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Env variable names for injected credentials.
const (
	EnvSpotifyClientID     = "SPOTIFY_CLIENT_ID"
	EnvSpotifyClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvSpotifyRefreshToken = "SPOTIFY_REFRESH_TOKEN"
	EnvGetSongAPIKey       = "GETSONGBPM_API_KEY"
)
