package ui

import (
	"fmt"
	"strings"

	"github.com/hy4ri/ideaboard/internal/tui/logic"
	"github.com/hy4ri/ideaboard/internal/tui/state"
	"github.com/hy4ri/ideaboard/internal/tui/styles"
	"github.com/hy4ri/ideaboard/internal/tui/utils"
)

func renderOverlay(s *state.State, keymap logic.Keymap) string {
	switch s.Overlay {
	case state.OverlayNoteEdit:
		return renderNoteEdit(s)
	case state.OverlayNameForm:
		return renderNameForm(s)
	case state.OverlayTagFilter:
		return renderTagPanel(s)
	case state.OverlayBoards:
		return renderBoards(s)
	case state.OverlayConfirm:
		return renderConfirm(s)
	case state.OverlayHelp:
		return renderHelp(s, keymap)
	case state.OverlayAI:
		return renderAIPanel(s)
	}
	return ""
}

func renderNoteEdit(s *state.State) string {
	titleLabel := "Title"
	descLabel := "Description"
	if s.DescFocused {
		descLabel = styles.Title.Render("Description")
	} else {
		titleLabel = styles.Title.Render("Title")
	}
	content := styles.OverlayTitle.Render("Edit note") + "\n" +
		titleLabel + "\n" + s.TitleInput.View() + "\n\n" +
		descLabel + "\n" + s.DescInput.View() + "\n\n" +
		styles.HintText.Render("tab switch field · enter save · esc cancel")
	return styles.OverlayBox.Render(content)
}

func renderNameForm(s *state.State) string {
	title := map[state.NameFormKind]string{
		state.NameFormBoard: "New board",
		state.NameFormGroup: "New group",
		state.NameFormTag:   "New tag",
	}[s.NameForm]
	content := styles.OverlayTitle.Render(title) + "\n" +
		s.NameInput.View() + "\n\n" +
		styles.HintText.Render("enter create · esc cancel")
	return styles.OverlayBox.Render(content)
}

// renderTagPanel lists every tag. With notes selected the panel assigns
// tags; otherwise the checkboxes drive the tag filter.
func renderTagPanel(s *state.State) string {
	assigning := s.Selection.Count() > 0
	title := "Filter by tag"
	if assigning {
		title = fmt.Sprintf("Tag %d selected note(s)", s.Selection.Count())
	}

	var rows []string
	if len(s.Tags) == 0 {
		rows = append(rows, styles.HintText.Render("no tags yet"))
	}
	for i, tag := range s.Tags {
		mark := "[ ]"
		if assigning {
			if selectionAllTagged(s, tag.ID) {
				mark = "[x]"
			}
		} else if s.FilterTags[tag.ID] {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s #%s", mark, tag.Name)
		if i == s.TagCursor {
			row = styles.NoteSelected.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}

	content := styles.OverlayTitle.Render(title) + "\n" +
		strings.Join(rows, "\n") + "\n\n" +
		styles.HintText.Render("enter toggle · n new · d delete · esc close")
	return styles.OverlayBox.Render(content)
}

func selectionAllTagged(s *state.State, tagID string) bool {
	for _, id := range s.Selection.IDs() {
		idea := s.IdeaByID(id)
		if idea == nil {
			continue
		}
		found := false
		for _, t := range idea.TagIDs {
			if t == tagID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func renderBoards(s *state.State) string {
	var rows []string
	if len(s.Boards) == 0 {
		rows = append(rows, styles.HintText.Render("no boards yet"))
	}
	for i, board := range s.Boards {
		row := board.Name
		if s.Board != nil && board.ID == s.Board.ID {
			row += styles.Status.Render("  (current)")
		}
		if i == s.BoardCursor {
			row = styles.NoteSelected.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	content := styles.OverlayTitle.Render("Boards") + "\n" +
		strings.Join(rows, "\n") + "\n\n" +
		styles.HintText.Render("enter open · n new · d delete · esc close")
	return styles.OverlayBox.Render(content)
}

func renderConfirm(s *state.State) string {
	kind := map[state.ConfirmKind]string{
		state.ConfirmGroup: "group",
		state.ConfirmTag:   "tag",
		state.ConfirmBoard: "board",
	}[s.Confirm.Kind]
	body := fmt.Sprintf("Delete %s %q?", kind, s.Confirm.Name)
	if s.Confirm.Kind == state.ConfirmGroup {
		body += "\n" + styles.HintText.Render("its notes are kept")
	}
	content := styles.OverlayTitle.Render("Confirm") + "\n" +
		body + "\n\n" +
		styles.HintText.Render("y delete · n cancel")
	return styles.OverlayBox.Render(content)
}

func renderHelp(s *state.State, keymap logic.Keymap) string {
	var b strings.Builder
	for _, item := range keymap.HelpItems() {
		key, desc := item[0], item[1]
		if desc == "" {
			if key != "" {
				b.WriteString(styles.Title.Render(key))
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(utils.PadToWidth(key, 16))
		b.WriteString(desc)
		b.WriteString("\n")
	}
	s.HelpView.SetContent(b.String())
	content := styles.OverlayTitle.Render("Help") + "\n" +
		s.HelpView.View() + "\n" +
		styles.HintText.Render("↑/↓ scroll · esc close")
	return styles.OverlayBox.Render(content)
}

func renderAIPanel(s *state.State) string {
	text := s.AIText
	if strings.TrimSpace(text) == "" {
		text = styles.HintText.Render("nothing came back")
	}
	wrapped := strings.Join(utils.WrapString(text, min(s.Width-12, 72)), "\n")
	content := styles.OverlayTitle.Render(s.AITitle) + "\n" +
		wrapped + "\n\n" +
		styles.HintText.Render("esc close")
	return styles.OverlayBox.Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
