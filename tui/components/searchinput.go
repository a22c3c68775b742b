package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/tui/styles"
)

// SearchInputState holds the state for the search input component.
type SearchInputState struct {
	// Input is the current search text buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
	// Pending indicates typed text that has not yet been applied (debounce
	// window still open)
	Pending bool
}

// SearchInput renders the search input component inside a RenderInfoBox.
// While the debounce window is open a dim ellipsis marks the pending state.
func SearchInput(state SearchInputState, width int, focused bool) string {
	promptStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	inputStyle := lipgloss.NewStyle().
		Foreground(styles.Chalk)

	// Build input display with cursor
	input := state.Input
	var displayInput string
	if focused {
		cursor := "_"
		if state.CursorPos >= len(input) {
			displayInput = input + cursor
		} else {
			displayInput = input[:state.CursorPos] + cursor + input[state.CursorPos:]
		}
	} else {
		displayInput = input
	}

	content := " " + promptStyle.Render("/") + inputStyle.Render(displayInput)

	if state.Pending {
		indicator := lipgloss.NewStyle().Foreground(styles.Slate).Render("…")

		innerW := width - 4 // InfoBox inner width
		contentW := lipgloss.Width(content)
		indicatorW := lipgloss.Width(indicator)
		pad := innerW - contentW - indicatorW
		if pad < 1 {
			pad = 1
		}
		content = content + strings.Repeat(" ", pad) + indicator
	}

	return RenderInfoBox("Search", []string{content}, width, focused)
}

// InsertChar inserts a character at the current cursor position.
func (s *SearchInputState) InsertChar(c rune) {
	if s.CursorPos >= len(s.Input) {
		s.Input += string(c)
	} else {
		s.Input = s.Input[:s.CursorPos] + string(c) + s.Input[s.CursorPos:]
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *SearchInputState) Backspace() {
	if s.CursorPos > 0 && len(s.Input) > 0 {
		if s.CursorPos >= len(s.Input) {
			s.Input = s.Input[:len(s.Input)-1]
		} else {
			s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		}
		s.CursorPos--
	}
}

// MoveCursorLeft moves the cursor left.
func (s *SearchInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *SearchInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// Clear resets the search input to empty state.
func (s *SearchInputState) Clear() {
	s.Input = ""
	s.CursorPos = 0
	s.Pending = false
}
