package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// StatusBarState holds the gallery summary shown in the top status bar.
type StatusBarState struct {
	// TotalPlays is the size of the full collection
	TotalPlays int
	// FilteredCount is how many plays survive the current criteria
	FilteredCount int
	// Page is the current 1-based page number
	Page int
	// PageCount is the total number of pages for the filtered view
	PageCount int
	// ActiveFilters is the number of active filter predicates
	ActiveFilters int
	// Message is a transient result/feedback message
	Message string
	// MessageIsError renders the message in the warning style
	MessageIsError bool
}

// StatusBar renders the status bar component: play counts and page position
// on the left, active filter count on the right.
func StatusBar(state StatusBarState, width int) string {
	leftContent := fmt.Sprintf(" ⚑ %d/%d plays · page %d/%d",
		state.FilteredCount, state.TotalPlays, state.Page, state.PageCount)

	var rightContent string
	if state.ActiveFilters > 0 {
		rightContent = fmt.Sprintf("filters: %d ", state.ActiveFilters)
	} else {
		rightContent = "no filters "
	}

	middle := state.Message
	if middle != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.Green)
		if state.MessageIsError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Red)
		}
		middle = msgStyle.Render(" " + middle)
	}

	leftWidth := lipgloss.Width(leftContent)
	midWidth := lipgloss.Width(middle)
	rightWidth := lipgloss.Width(rightContent)
	padding := width - leftWidth - midWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	content := leftContent + middle + strings.Repeat(" ", padding) + rightContent

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Ink).
		Foreground(styles.Chalk).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(content)
}
