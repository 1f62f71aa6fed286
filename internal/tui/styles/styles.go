// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/ideaboard/internal/api"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#AD8EE6"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Note colors, one per palette entry.
var noteColors = map[api.Color]lipgloss.Color{
	api.ColorYellow: lipgloss.Color("#E8C547"),
	api.ColorPink:   lipgloss.Color("#E87EA1"),
	api.ColorBlue:   lipgloss.Color("#5A9BD5"),
	api.ColorGreen:  lipgloss.Color("#6BBF59"),
	api.ColorOrange: lipgloss.Color("#E8903A"),
}

// NoteColor returns the terminal color for a note color, defaulting to
// the yellow sticky.
func NoteColor(c api.Color) lipgloss.Color {
	if col, ok := noteColors[c]; ok {
		return col
	}
	return noteColors[api.ColorYellow]
}

// Base styles
var (
	Spinner = lipgloss.NewStyle().Foreground(Highlight)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	Status = lipgloss.NewStyle().
		Foreground(Subtle)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	StatusOK = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// Canvas styles
var (
	// NoteBorder styles one note card; the foreground carries the note
	// color so the border reads as the sticky's hue.
	NoteBorder = lipgloss.NewStyle()

	NoteSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	ConnectionLine = lipgloss.NewStyle().
			Foreground(Subtle)

	GroupBorder = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3A7CA5", Dark: "#7FB7D9"})

	LassoStyle = lipgloss.NewStyle().
			Foreground(Highlight)
)

// Overlay styles
var (
	OverlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2)

	OverlayTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)

	HintText = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	PresentTitle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4)
)
