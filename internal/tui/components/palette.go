package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/tui/styles"
)

// Palette layout constants, shared by the renderer and the mouse hit
// test so a press always lands on the swatch it looks like it hits.
const (
	PaletteLeft       = 1
	PaletteSwatchCols = 4
)

// PaletteSwatchAt maps a terminal column on the palette row to a color.
func PaletteSwatchAt(x int) (api.Color, bool) {
	if x < PaletteLeft {
		return "", false
	}
	idx := (x - PaletteLeft) / PaletteSwatchCols
	if idx >= len(api.Colors) {
		return "", false
	}
	return api.Colors[idx], true
}

// RenderPalette draws the swatch row. The armed swatch is bracketed.
func RenderPalette(armed api.Color) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", PaletteLeft))
	for _, c := range api.Colors {
		swatch := "  "
		style := lipgloss.NewStyle().Background(styles.NoteColor(c))
		if c == armed {
			b.WriteString("[" + style.Render(swatch) + "]")
		} else {
			b.WriteString(" " + style.Render(swatch) + " ")
		}
	}
	return b.String()
}
