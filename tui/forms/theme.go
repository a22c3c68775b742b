// Package forms builds the huh forms used for filtering and tag editing.
package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Turf).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Crimson).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Crimson).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Crimson)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Sky)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Chalk)

	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Focused.MultiSelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Sky)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.SelectedPrefix = lipgloss.NewStyle().
		SetString("[✓] ").
		Foreground(styles.Sky)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Focused.UnselectedPrefix = lipgloss.NewStyle().
		SetString("[ ] ").
		Foreground(styles.Sage)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Chalk)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Turf).
		Foreground(styles.Chalk).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Slate).
		Foreground(styles.Sage).
		Padding(0, 1)

	t.Focused.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Crimson)

	t.Blurred.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Crimson)

	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Blurred.SelectedPrefix = lipgloss.NewStyle().
		SetString("[✓] ").
		Foreground(styles.Sage)

	t.Blurred.UnselectedOption = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.UnselectedPrefix = lipgloss.NewStyle().
		SetString("[ ] ").
		Foreground(styles.Slate)

	t.Blurred.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Slate).
		Foreground(styles.Sage).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Night).
		Foreground(styles.Slate).
		Padding(0, 1)

	t.Blurred.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Night).
		Padding(0, 1)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Sage)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
