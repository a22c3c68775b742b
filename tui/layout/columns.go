package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// Responsive layout constants.
const (
	// MinTerminalWidth is the minimum terminal width for the two-column layout.
	MinTerminalWidth = 70
	// DetailMinWidth is the minimum width for the detail column before it hides.
	DetailMinWidth = 28
)

// ComputeColumnWidths calculates responsive column widths based on terminal width.
// The play list takes roughly two thirds; the detail card takes the rest.
// Below MinTerminalWidth the detail column is hidden and the list gets everything.
func ComputeColumnWidths(termWidth int) (list, detail int, showDetail bool) {
	showDetail = termWidth >= MinTerminalWidth

	if !showDetail {
		return termWidth, 0, false
	}

	// Account for 1 border character between columns
	usableWidth := termWidth - 1
	detail = usableWidth / 3
	if detail < DetailMinWidth {
		detail = DetailMinWidth
	}
	list = usableWidth - detail
	return list, detail, true
}

// JoinColumns joins pre-rendered column strings side by side with border separators.
// Each column is normalized to the given height and padded to its width.
func JoinColumns(columns []string, widths []int, height int) string {
	borderStr := lipgloss.NewStyle().
		Foreground(styles.Slate).
		Render("│")

	// Split each column into lines and normalize to height
	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = NormalizeLines(strings.Split(col, "\n"), height)
	}

	var rows []string
	for row := 0; row < height; row++ {
		var parts []string
		for i, lines := range colLines {
			parts = append(parts, PadToWidth(lines[row], widths[i]))
		}
		rows = append(rows, strings.Join(parts, borderStr))
	}

	return strings.Join(rows, "\n")
}
