// ABOUTME: Entry point for harmonic-sorter
// ABOUTME: Handles command-line parsing and routing into the sort run

// Package main provides the entry point for harmonic-sorter, a tool that
// reorders a playlist into a harmonically and rhythmically smooth sequence
// using the Camelot wheel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	dryRun := flag.Bool("dry-run", false, "preview the new order without writing changes")
	visual := flag.Bool("visual", false, "review the proposed order interactively before writing back")
	debug := flag.Bool("debug", false, "enable debug logging to harmonic-sorter-debug.log")
	source := flag.String("source", "", "catalog source override: local, tags or getsong")
	sortBy := flag.String("by", "", "sort mode override: camelot or pitch")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: harmonic-sorter [flags] <playlist-id-or-url>")
		fmt.Println("Example: harmonic-sorter https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if err := RunCLI(RunOptions{
		PlaylistArg: args[0],
		DryRun:      *dryRun,
		Visual:      *visual,
		DebugLog:    *debug,
		Source:      *source,
		SortBy:      *sortBy,
	}); err != nil {
		log.Printf("Error: %v", err)

		return 1
	}

	return 0
}
