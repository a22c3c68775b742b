// Package styles provides Lipgloss styles for the TUI using a gridiron
// night-game colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark turf theme
const (
	// Night is the main background colour
	Night = lipgloss.Color("#121619")
	// Ink is a secondary dark background
	Ink = lipgloss.Color("#0C0F11")
	// Slate is the border/dim accent colour
	Slate = lipgloss.Color("#4A5560")
	// Turf is used for highlights and focus states
	Turf = lipgloss.Color("#2E6B4F")
	// Sage is a secondary text colour
	Sage = lipgloss.Color("#9FAD9B")
	// Chalk is the primary text colour
	Chalk = lipgloss.Color("#EDE6D4")
	// Crimson is an accent colour for headers and special elements
	Crimson = lipgloss.Color("#C23B4E")
	// Sky is an accent colour for information and interactive elements
	Sky = lipgloss.Color("#3D96C2")
	// Gold is a warm accent for sub-headers and captions
	Gold = lipgloss.Color("#C79A3C")
	// Red is used for warnings and errors
	Red = lipgloss.Color("#AF3A33")
	// Green is used for success messages
	Green = lipgloss.Color("#89A05C")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Night)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(Ink).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Turf).
	Foreground(Chalk).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Chalk)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Sage)

// Caption is the style for quarter narrative captions
var Caption = lipgloss.NewStyle().
	Foreground(Gold).
	Italic(true)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
