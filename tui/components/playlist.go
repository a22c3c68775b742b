package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/play"
	"github.com/user/play-gallery-cli/tui/styles"
)

// PlaylistState holds the current page window and everything needed to
// render it. The model rebuilds it whenever the page or filters change.
type PlaylistState struct {
	// Plays is the current page window, in canonical order
	Plays []play.Play
	// Teams maps play ID to derived team name
	Teams map[string]string
	// Labels maps play ID to its assigned tag labels
	Labels map[string][]string
	// Captions maps quarter number to its narrative caption
	Captions map[int]string
	// SelectedIndex is the index into Plays of the highlighted play
	SelectedIndex int
}

// MoveUp moves the selection to the previous play on the page.
func (s *PlaylistState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection to the next play on the page.
func (s *PlaylistState) MoveDown() {
	if s.SelectedIndex < len(s.Plays)-1 {
		s.SelectedIndex++
	}
}

// Selected returns the highlighted play, or nil when the page is empty.
func (s *PlaylistState) Selected() *play.Play {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Plays) {
		return nil
	}
	return &s.Plays[s.SelectedIndex]
}

// Playlist renders the page window bucketed by quarter in ascending order,
// each group preceded by its narrative caption. Within a group the plays
// keep their canonical order.
func Playlist(state PlaylistState, width int) string {
	if len(state.Plays) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.Sage).Italic(true)
		return empty.Render(" No plays match the current filters.")
	}

	captionStyle := styles.Caption
	rowStyle := lipgloss.NewStyle().Foreground(styles.Chalk)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Sage)
	tagStyle := lipgloss.NewStyle().Foreground(styles.Sky)
	penaltyStyle := lipgloss.NewStyle().Foreground(styles.Crimson)
	selectedStyle := styles.Highlight

	// Bucket page indices by quarter, preserving order within each bucket
	groups := make(map[int][]int)
	for i, p := range state.Plays {
		groups[p.Quarter] = append(groups[p.Quarter], i)
	}
	quarters := make([]int, 0, len(groups))
	for q := range groups {
		quarters = append(quarters, q)
	}
	sort.Ints(quarters)

	var lines []string
	for _, q := range quarters {
		lines = append(lines, captionStyle.Render(" "+state.Captions[q]))
		for _, i := range groups[q] {
			p := state.Plays[i]

			marker := "  "
			if i == state.SelectedIndex {
				marker = "▸ "
			}

			date := p.Date
			if date == "" {
				date = "undated"
			}

			row := fmt.Sprintf("%s%s  %s", marker, dimStyle.Render(date), rowStyle.Render(truncate(p.Title, width-30)))
			if team, ok := state.Teams[p.ID]; ok {
				row += dimStyle.Render(" · " + team)
			}
			if labels := state.Labels[p.ID]; len(labels) > 0 {
				row += " " + tagStyle.Render("["+strings.Join(labels, ",")+"]")
			}
			if p.IsPenalty() {
				row += " " + penaltyStyle.Render("⚑")
			}

			if i == state.SelectedIndex {
				row = selectedStyle.Render(row)
			}
			lines = append(lines, row)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
