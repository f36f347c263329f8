// ABOUTME: Rendering and styles for the preview TUI
// ABOUTME: Lipgloss styles plus the View implementation

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241"))

	trackStyle = lipgloss.NewStyle()

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Loading preview..."
	}

	s := titleStyle.Render("Proposed playlist order") + "\n\n"

	s += headerStyle.Render(fmt.Sprintf("%-4s %-4s %s  %-20s %-30s",
		"#", "Key", "BPM", "Artist", "Title")) + "\n"

	s += m.viewport.View() + "\n"

	s += statusStyle.Render(fmt.Sprintf("%d/%d resolved, %d unresolved at the end",
		m.resolvedCount, len(m.tracks), len(m.tracks)-m.resolvedCount)) + "\n"

	s += helpStyle.Render("↑/↓ scroll · y/enter write back · q/esc abort")

	return s
}
