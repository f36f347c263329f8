// ABOUTME: Shared helpers for the command-line entry points
// ABOUTME: Run options, debug logging setup and small formatting utilities

package main

import (
	"fmt"
	"log"
	"os"
)

var debugLog *log.Logger

// RunOptions contains command-line options for a sort run
type RunOptions struct {
	PlaylistArg string // Playlist id or URL, as given on the command line
	DryRun      bool   // Compute and print the order without writing back
	Visual      bool   // Preview the order in the TUI before writing back
	DebugLog    bool   // Enable debug logging to file
	Source      string // Catalog source override (empty = from config)
	SortBy      string // Sort mode override (empty = from config)
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// truncate shortens string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
