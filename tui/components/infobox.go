// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// RenderInfoBox renders content lines inside a rounded box with a title
// embedded in the top border: ╭─ Title ─────╮. When focused, the title is
// drawn in the crimson accent.
func RenderInfoBox(title string, contentLines []string, width int, focused bool) string {
	if width < 4 {
		return ""
	}

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	titleColor := styles.Sky
	if focused {
		titleColor = styles.Crimson
	}
	headerStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Slate)

	headerText := headerStyle.Render(" " + title + " ")
	headerTextWidth := lipgloss.Width(headerText)

	fillWidth := innerWidth - headerTextWidth - 1
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := borderStyle.Render("╭─") + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)+"╮")

	var renderedLines []string
	renderedLines = append(renderedLines, topLine)

	for _, line := range contentLines {
		lineWidth := lipgloss.Width(line)
		pad := innerWidth - lineWidth
		if pad < 0 {
			pad = 0
		}
		renderedLines = append(renderedLines, borderStyle.Render("│")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	bottomLine := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	renderedLines = append(renderedLines, bottomLine)

	return strings.Join(renderedLines, "\n")
}
