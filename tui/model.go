// ABOUTME: Terminal UI model for previewing the proposed playlist order
// ABOUTME: Bubble Tea model with a scrollable track list and confirm/abort keys

// Package tui provides an interactive preview of the proposed playlist order.
// The ordering is computed before the TUI runs; this is purely a confirmation
// gate in front of the write-back.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"harmonic-sorter/playlist"
)

// UI chrome heights (elements that reduce available viewport space)
const (
	titleHeight     = 2 // Title bar
	headerHeight    = 1 // Column header for the track list
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line

	totalUIChrome = titleHeight + headerHeight + statusBarHeight + helpHeight

	minViewportHeight = 5
)

// keyMap defines the preview key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "write back"),
		),
		Abort: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "abort"),
		),
	}
}

// model holds the preview state
type model struct {
	tracks        []playlist.ResolvedTrack
	resolvedCount int

	viewport viewport.Model
	ready    bool
	keys     keyMap

	confirmed bool
	quitting  bool
}

func newModel(tracks []playlist.ResolvedTrack, resolvedCount int) model {
	return model{
		tracks:        tracks,
		resolvedCount: resolvedCount,
		keys:          defaultKeyMap(),
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - totalUIChrome
		if height < minViewportHeight {
			height = minViewportHeight
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.renderTracks())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, m.keys.Abort):
			m.quitting = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// renderTracks builds the full track list; the viewport handles scrolling
func (m model) renderTracks() string {
	var content string

	for i, track := range m.tracks {
		keyLabel, bpm := "?", "  ?"
		if track.Resolved() {
			keyLabel = track.Resolution.Camelot.String()
			bpm = fmt.Sprintf("%3.0f", track.Resolution.Tempo)
		}

		line := fmt.Sprintf("%-4d %-4s %s  %-20s %-30s",
			i+1, keyLabel, bpm, clip(track.Artist, 20), clip(track.Title, 30))

		if track.Resolved() {
			content += trackStyle.Render(line) + "\n"
		} else {
			content += unresolvedStyle.Render(line+"  (unresolved)") + "\n"
		}
	}

	return content
}

// clip shortens a string to width, adding an ellipsis if needed
func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}

	if width <= 1 {
		return s[:width]
	}

	return s[:width-1] + "…"
}

// Run shows the proposed order and returns true if the user confirmed the
// write-back, false if they aborted.
func Run(tracks []playlist.ResolvedTrack, resolvedCount int) (bool, error) {
	program := tea.NewProgram(newModel(tracks, resolvedCount), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run preview: %w", err)
	}

	result, ok := final.(model)
	if !ok {
		return false, fmt.Errorf("unexpected final model type %T", final)
	}

	return result.confirmed, nil
}
