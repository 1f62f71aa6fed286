// Package ui renders the application state. It never mutates state;
// everything it shows comes from the shared State plus the live gesture
// side channels.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/tui/components"
	"github.com/hy4ri/ideaboard/internal/tui/logic"
	"github.com/hy4ri/ideaboard/internal/tui/state"
	"github.com/hy4ri/ideaboard/internal/tui/styles"
	"github.com/hy4ri/ideaboard/internal/tui/utils"
)

// View renders one frame.
func View(s *state.State, keymap logic.Keymap) string {
	if s.Width == 0 || s.Height == 0 {
		return "Loading..."
	}

	ideas := logic.VisibleIdeas(s.Ideas, s.Tags, s.FilterColor, s.FilterTags, s.SearchQuery)

	if s.Presenting {
		return renderPresentation(s, ideas)
	}

	canvasHeight := s.Height - state.HeaderRows - state.FooterRows
	if canvasHeight < 1 {
		canvasHeight = 1
	}

	var body string
	switch {
	case s.Loading:
		body = lipgloss.Place(s.Width, canvasHeight, lipgloss.Center, lipgloss.Center,
			s.Spinner.View()+" Loading board...")
	case s.Overlay != state.OverlayNone:
		body = lipgloss.Place(s.Width, canvasHeight, lipgloss.Center, lipgloss.Center,
			renderOverlay(s, keymap))
	default:
		body = renderCanvas(s, ideas, s.Width, canvasHeight)
	}

	return renderHeader(s, len(ideas)) + "\n" + body + "\n" + renderFooter(s)
}

// renderHeader draws the two title rows: board name and session info on
// the first, active filters on the second.
func renderHeader(s *state.State, visibleCount int) string {
	boardName := "no board"
	if s.Board != nil {
		boardName = s.Board.Name
	}
	left := styles.Title.Render("◈ "+boardName) +
		styles.Status.Render(fmt.Sprintf("  %d/%d ideas", visibleCount, len(s.Ideas)))

	var parts []string
	if s.AIBusy {
		parts = append(parts, s.Spinner.View()+" thinking")
	}
	if s.TimerRunning {
		parts = append(parts, "⏱ "+components.FormatDuration(s.TimerRemaining))
	}
	parts = append(parts, fmt.Sprintf("%d%%", int(s.Viewport.Zoom*100)))
	if s.PanMode {
		parts = append(parts, "PAN")
	}
	if s.Connector.Active() {
		parts = append(parts, "CONNECT")
	}
	right := styles.Status.Render(strings.Join(parts, "  "))

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line1 := left + strings.Repeat(" ", gap) + right

	return line1 + "\n" + renderFilterLine(s)
}

func renderFilterLine(s *state.State) string {
	var parts []string
	if s.Searching {
		parts = append(parts, "/ "+s.SearchInput.View())
	} else if s.SearchQuery != "" {
		parts = append(parts, "/"+s.SearchQuery)
	}
	if s.FilterColor != "" {
		chip := lipgloss.NewStyle().
			Foreground(styles.NoteColor(s.FilterColor)).
			Render("● " + string(s.FilterColor))
		parts = append(parts, chip)
	}
	for id, on := range s.FilterTags {
		if !on {
			continue
		}
		if tag := s.TagByID(id); tag != nil {
			parts = append(parts, "#"+tag.Name)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.Status.Render(" " + strings.Join(parts, "  "))
}

// renderFooter draws the palette row and the status row.
func renderFooter(s *state.State) string {
	palette := components.RenderPalette(s.ArmedColor)

	status := s.StatusMsg
	switch {
	case s.Notice != "":
		status = styles.StatusOK.Render(s.Notice)
	case s.ArmedColor != "":
		status = styles.HintText.Render("release over the canvas to drop a " + string(s.ArmedColor) + " note")
	case s.Connector.Active():
		status = styles.HintText.Render(connectHint(s))
	case status == "":
		status = styles.HintText.Render("? help  n new note  / search  q quit")
	}

	hist := ""
	if s.History.CanUndo() || s.History.CanRedo() {
		hist = styles.Status.Render(fmt.Sprintf("undo %d", s.History.Len()))
	}
	gap := s.Width - lipgloss.Width(palette) - lipgloss.Width(hist) - 2
	if gap < 1 {
		gap = 1
	}
	line1 := palette + strings.Repeat(" ", gap) + hist

	return line1 + "\n" + utils.TruncateString(status, s.Width)
}

func connectHint(s *state.State) string {
	if s.Connector.SourceID != "" {
		return "click the target note (source again cancels)"
	}
	return "click the source note"
}

// renderPresentation shows one idea per screen.
func renderPresentation(s *state.State, ideas []api.Idea) string {
	if len(ideas) == 0 {
		return lipgloss.Place(s.Width, s.Height, lipgloss.Center, lipgloss.Center,
			styles.HintText.Render("Nothing to present. esc to exit."))
	}
	idx := s.PresentIndex
	if idx >= len(ideas) {
		idx = len(ideas) - 1
	}
	idea := ideas[idx]

	title := styles.PresentTitle.
		Foreground(styles.NoteColor(idea.Color)).
		Render(idea.Title)
	body := title
	if idea.Description != "" {
		body += "\n\n" + strings.Join(utils.WrapString(idea.Description, s.Width*2/3), "\n")
	}
	if idea.Votes > 0 {
		body += "\n\n" + styles.StatusOK.Render(fmt.Sprintf("▲ %d votes", idea.Votes))
	}
	footer := styles.HintText.Render(fmt.Sprintf("%d / %d  ·  ←/→ navigate, esc exit", idx+1, len(ideas)))

	return lipgloss.Place(s.Width, s.Height-1, lipgloss.Center, lipgloss.Center, body) +
		"\n" + lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, footer)
}
