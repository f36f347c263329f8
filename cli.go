// ABOUTME: CLI mode implementation for non-interactive playlist sorting
// ABOUTME: Wires config, catalog source and playlist host into one sort run

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"harmonic-sorter/catalog"
	"harmonic-sorter/config"
	"harmonic-sorter/playlist"
	"harmonic-sorter/spotify"
	"harmonic-sorter/tui"
)

// RunCLI executes one sort run: fetch, enrich, order, report, write back.
func RunCLI(opts RunOptions) error {
	if opts.DebugLog {
		if err := SetupDebugLog("harmonic-sorter-debug.log"); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(config.GetConfigPath())
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}

	if opts.Source != "" {
		cfg.Source = opts.Source
	}

	if opts.SortBy != "" {
		cfg.SortBy = opts.SortBy
	}

	playlistID, err := spotify.ParsePlaylistID(opts.PlaylistArg)
	if err != nil {
		return err
	}

	// Credentials come from the environment and are injected explicitly;
	// missing credentials are a setup failure before any track processing.
	client, err := spotify.NewClient(spotify.Credentials{
		ClientID:     os.Getenv(config.EnvSpotifyClientID),
		ClientSecret: os.Getenv(config.EnvSpotifyClientSecret),
		RefreshToken: os.Getenv(config.EnvSpotifyRefreshToken),
	})
	if err != nil {
		return err
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		cancel()
	}()

	fmt.Printf("Fetching playlist %s...\n", playlistID)

	tracks, err := client.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("failed to read playlist: %w", err)
	}

	if len(tracks) == 0 {
		return fmt.Errorf("playlist is empty")
	}

	fmt.Printf("Found %d tracks. Resolving keys and tempos (%s catalog)...\n", len(tracks), cfg.Source)

	enriched := enrichTracks(ctx, tracks, source, cfg.Scoring, cfg.LookupWorkers)
	printResolutionLog(enriched)

	ordered := playlist.Order(enriched, cfg.SortMode())

	resolvedCount := 0

	for _, track := range ordered {
		if track.Resolved() {
			resolvedCount++
		}
	}

	if opts.Visual {
		confirmed, err := tui.Run(ordered, resolvedCount)
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}

		if !confirmed {
			fmt.Println("Aborted, playlist not modified.")

			return nil
		}
	} else {
		printOrderTable(ordered)
	}

	// Partial resolution is normal completion, not an error
	fmt.Printf("\nResolved %d/%d tracks; %d unresolved will keep their original order at the end.\n",
		resolvedCount, len(ordered), len(ordered)-resolvedCount)

	if opts.DryRun {
		fmt.Println("--dry-run mode: playlist not modified")

		return nil
	}

	ids := make([]string, 0, len(ordered))
	for _, track := range ordered {
		ids = append(ids, track.ID)
	}

	fmt.Printf("Writing new order back in %d request(s)...\n", spotify.ChunkCount(len(ids)))

	if err := client.Reorder(ctx, playlistID, ids); err != nil {
		if opts.Visual {
			// The preview screen is gone; print the computed order so it is not lost
			printOrderTable(ordered)
		}

		return fmt.Errorf("failed to write playlist order: %w", err)
	}

	fmt.Println("Done! Check the custom order on the playlist.")

	return nil
}

// buildSource constructs the configured catalog source.
func buildSource(cfg config.Config) (catalog.Source, error) {
	switch cfg.Source {
	case config.SourceLocal:
		local, err := catalog.LoadLocalCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}

		fmt.Printf("Loaded %d entries from %s.\n", local.Len(), cfg.Catalog)

		return local, nil

	case config.SourceTags:
		if cfg.MusicDir == "" {
			return nil, fmt.Errorf("music_dir must be set for the tags source")
		}

		tags, err := catalog.ScanTagCatalog(cfg.MusicDir)
		if err != nil {
			return nil, err
		}

		fmt.Printf("Scanned %d tagged tracks from %s.\n", tags.Len(), cfg.MusicDir)

		return tags, nil

	case config.SourceGetSong:
		return catalog.NewGetSongClient(os.Getenv(config.EnvGetSongAPIKey),
			catalog.WithGetSongBaseURL(cfg.GetSongURL),
			catalog.WithGetSongLimit(cfg.GetSongLimit))

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// printResolutionLog prints the per-track resolution outcome in input order.
func printResolutionLog(tracks []playlist.ResolvedTrack) {
	for _, track := range tracks {
		if track.Resolved() {
			fmt.Printf("[ ok ] %s - %s (%s, %.0f BPM)\n",
				track.Artist, track.Title, track.Resolution.Camelot, track.Resolution.Tempo)
		} else {
			fmt.Printf("[miss] %s - %s\n", track.Artist, track.Title)
		}
	}
}

// printOrderTable prints the final order as an aligned table.
func printOrderTable(tracks []playlist.ResolvedTrack) {
	fmt.Println("\nSorted playlist:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tKey\tBPM\tArtist\tTitle"); err != nil {
		log.Printf("Warning: failed to write header: %v", err)
	}

	if _, err := fmt.Fprintln(w, "---\t---\t---\t------\t-----"); err != nil {
		log.Printf("Warning: failed to write separator: %v", err)
	}

	for i, track := range tracks {
		key, bpm := "?", "?"
		if track.Resolved() {
			key = track.Resolution.Camelot.String()
			bpm = fmt.Sprintf("%.0f", track.Resolution.Tempo)
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			key,
			bpm,
			truncate(track.Artist, 20),
			truncate(track.Title, 30),
		); err != nil {
			log.Printf("Warning: failed to write track %d: %v", i+1, err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Printf("Warning: failed to flush output: %v", err)
	}
}
