package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
// The overlay is styled with the palette colors and grouped by function.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Browse",
			bindings: []struct {
				key  string
				desc string
			}{
				{"j / ↓", "Select next play"},
				{"k / ↑", "Select previous play"},
				{"n / →", "Next page"},
				{"p / ←", "Previous page"},
				{"Enter", "Play selected (mpv)"},
				{"Space", "Pause/resume player"},
			},
		},
		{
			title: "Filter",
			bindings: []struct {
				key  string
				desc string
			}{
				{"/", "Search (debounced)"},
				{"f", "Open filter form"},
				{"c", "Clear all filters"},
				{"Esc", "Leave search input"},
			},
		},
		{
			title: "Tags",
			bindings: []struct {
				key  string
				desc string
			}{
				{"t", "Edit tags for selected play"},
			},
		},
		{
			title: "Other",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"q", "Quit application"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true).
		Padding(0, 1)

	groupStyle := lipgloss.NewStyle().
		Foreground(styles.Crimson).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.Chalk)

	var b strings.Builder
	b.WriteString(titleStyle.Render("One Play a Day — Keybindings"))
	b.WriteString("\n\n")

	for _, g := range groups {
		b.WriteString(groupStyle.Render(" " + g.title))
		b.WriteString("\n")
		for _, kb := range g.bindings {
			key := keyStyle.Render(padRight(kb.key, 9))
			b.WriteString("   " + key + " " + descStyle.Render(kb.desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(styles.Sage).Italic(true).Render(" Press any key to close"))

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate).
		Padding(1, 2)

	content := overlayStyle.Render(b.String())

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// padRight pads a plain string with spaces to the given length.
func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
