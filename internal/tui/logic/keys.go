package logic

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
	"github.com/hy4ri/ideaboard/internal/tui/components"
	"github.com/hy4ri/ideaboard/internal/tui/state"
)

// handleKeyMsg routes keyboard input. Overlays own the keyboard while
// open; the search input owns it while focused; everything else falls
// through to the global shortcuts.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if key == "ctrl+c" {
		return tea.Quit
	}

	if h.Presenting {
		return h.handlePresentationKey(key)
	}

	switch h.Overlay {
	case state.OverlayNoteEdit:
		return h.handleNoteEditKey(msg)
	case state.OverlayNameForm:
		return h.handleNameFormKey(msg)
	case state.OverlayTagFilter:
		return h.handleTagPanelKey(key)
	case state.OverlayBoards:
		return h.handleBoardsKey(key)
	case state.OverlayConfirm:
		return h.handleConfirmKey(key)
	case state.OverlayHelp:
		return h.handleHelpKey(msg, key)
	case state.OverlayAI:
		if key == "esc" || key == "q" || key == "enter" {
			h.Overlay = state.OverlayNone
		}
		return nil
	}

	if h.Searching {
		return h.handleSearchKey(msg, key)
	}

	return h.handleGlobalKey(key)
}

// handleGlobalKey handles shortcuts on the bare canvas.
func (h *Handler) handleGlobalKey(key string) tea.Cmd {
	k := h.keymap
	switch key {
	case k.Quit.Key:
		return tea.Quit

	case k.Cancel.Key:
		return h.handleEscape()

	case k.Help.Key:
		h.Overlay = state.OverlayHelp
		return nil

	case k.NewNote.Key:
		// New note lands at the canvas point under the view center.
		cx, cy := h.Viewport.ScreenToCanvas(
			float64(h.Width)/2,
			float64(h.Height-state.HeaderRows-state.FooterRows)/2,
		)
		return h.createIdea(h.ArmedColor, cx, cy)

	case k.DeleteNote.Key, "backspace":
		return h.deleteSelected()

	case k.Undo.Key:
		return h.undo()
	case k.Redo.Key, k.RedoAlt.Key:
		return h.redo()

	case k.ZoomIn.Key, "+":
		h.Viewport.ZoomIn()
		return nil
	case k.ZoomOut.Key, "-":
		h.Viewport.ZoomOut()
		return nil
	case k.ZoomRset.Key:
		h.Viewport.ResetZoom()
		return nil

	case k.PanMode.Key:
		h.PanMode = !h.PanMode
		h.Panning = false
		return nil

	case "h", "left":
		if h.PanMode {
			h.Viewport.Pan(panKeyStep, 0)
		}
		return nil
	case "l", "right":
		if h.PanMode {
			h.Viewport.Pan(-panKeyStep, 0)
		}
		return nil
	case "k", "up":
		if h.PanMode {
			h.Viewport.Pan(0, panKeyStep)
		}
		return nil
	case "j", "down":
		if h.PanMode {
			h.Viewport.Pan(0, -panKeyStep)
		}
		return nil

	case k.ConnectMode.Key:
		h.Connector.Toggle()
		return nil

	case k.GroupSel.Key:
		if h.Selection.Count() < 2 {
			return h.showNotice("Select at least two notes to group")
		}
		h.openNameForm(state.NameFormGroup, "Group name")
		return nil

	case k.Vote.Key:
		return h.voteSelected()
	case k.Copy.Key:
		return h.copySelected()

	case k.Search.Key:
		h.Searching = true
		h.SearchInput.SetValue(h.SearchQuery)
		return h.SearchInput.Focus()

	case k.ColorFilt.Key:
		h.cycleColorFilter()
		return nil

	case k.TagPanel.Key:
		h.Overlay = state.OverlayTagFilter
		h.TagCursor = 0
		return nil

	case k.Boards.Key:
		h.Overlay = state.OverlayBoards
		return nil

	case "tab":
		return h.cycleBoard()

	case k.Refresh.Key:
		h.Loading = true
		h.StatusMsg = ""
		return tea.Batch(h.Spinner.Tick, h.loadInitialData())

	case k.Present.Key:
		return h.startPresentation()

	case k.Timer.Key:
		return h.toggleTimer()

	case k.Summary.Key:
		return h.requestSummary()
	case k.Suggest.Key:
		return h.requestSuggestions()
	case k.Categorize.Key:
		return h.requestCategorize()
	}

	// Number keys arm a palette color for drop-to-create.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		h.ArmedColor = api.Colors[key[0]-'1']
		return nil
	}

	return nil
}

// panKeyStep is the screen-cell pan distance for one keyboard pan press.
const panKeyStep = 4.0

// handleEscape applies the cancel precedence: an in-progress connection
// first, then an armed swatch, then pan mode, and finally the selection.
func (h *Handler) handleEscape() tea.Cmd {
	if h.Connector.Active() {
		h.Connector.Cancel()
		return nil
	}
	if h.ArmedColor != "" {
		h.ArmedColor = ""
		return nil
	}
	if h.PanMode {
		h.PanMode = false
		h.Panning = false
		return nil
	}
	if h.SearchQuery != "" || h.FilterColor != "" || len(h.activeFilterTags()) > 0 {
		h.SearchQuery = ""
		h.SearchInput.SetValue("")
		h.FilterColor = ""
		for id := range h.FilterTags {
			delete(h.FilterTags, id)
		}
		return nil
	}
	h.Selection.Clear()
	return nil
}

func (h *Handler) activeFilterTags() []string {
	var out []string
	for id, on := range h.FilterTags {
		if on {
			out = append(out, id)
		}
	}
	return out
}

// cycleColorFilter steps the color filter through off and the palette.
func (h *Handler) cycleColorFilter() {
	if h.FilterColor == "" {
		h.FilterColor = api.Colors[0]
		return
	}
	for i, c := range api.Colors {
		if c == h.FilterColor {
			if i == len(api.Colors)-1 {
				h.FilterColor = ""
			} else {
				h.FilterColor = api.Colors[i+1]
			}
			return
		}
	}
	h.FilterColor = ""
}

// beginEdit opens the inline editor for one note.
func (h *Handler) beginEdit(idea *api.Idea) tea.Cmd {
	h.NoteGesture.BeginEdit(idea.ID, idea.Title, idea.Description)
	h.EditingNoteID = idea.ID
	h.TitleInput.SetValue(idea.Title)
	h.DescInput.SetValue(idea.Description)
	h.DescFocused = false
	h.DescInput.Blur()
	h.Overlay = state.OverlayNoteEdit
	return h.TitleInput.Focus()
}

// handleNoteEditKey drives the note editor: tab switches fields, enter
// commits, esc cancels. A commit that changes nothing is dropped, and an
// empty title discards the edit.
func (h *Handler) handleNoteEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.NoteGesture.CancelEdit()
		h.closeNoteEdit()
		return nil

	case "tab", "shift+tab":
		h.DescFocused = !h.DescFocused
		if h.DescFocused {
			h.TitleInput.Blur()
			return h.DescInput.Focus()
		}
		h.DescInput.Blur()
		return h.TitleInput.Focus()

	case "enter":
		if strings.TrimSpace(h.TitleInput.Value()) == "" {
			h.NoteGesture.CancelEdit()
			h.closeNoteEdit()
			return h.showNotice("Title cannot be empty")
		}
		title, desc, changed := h.NoteGesture.CommitEdit(h.TitleInput.Value(), h.DescInput.Value())
		noteID := h.EditingNoteID
		h.closeNoteEdit()
		if !changed {
			return nil
		}
		idea := h.IdeaByID(noteID)
		if idea == nil {
			return nil
		}
		baseTitle, baseDesc := idea.Title, idea.Description
		idea.Title = title
		idea.Description = desc
		h.History.Push(canvas.Entry{
			Kind:   canvas.KindContent,
			NoteID: noteID,
			Before: canvas.Snapshot{Title: baseTitle, Description: baseDesc},
			After:  canvas.Snapshot{Title: title, Description: desc},
		})
		return h.syncIdeaContent(noteID, title, desc)
	}

	var cmd tea.Cmd
	if h.DescFocused {
		h.DescInput, cmd = h.DescInput.Update(msg)
	} else {
		h.TitleInput, cmd = h.TitleInput.Update(msg)
	}
	return cmd
}

func (h *Handler) closeNoteEdit() {
	h.Overlay = state.OverlayNone
	h.EditingNoteID = ""
	h.TitleInput.Blur()
	h.DescInput.Blur()
	h.DescFocused = false
}

// openNameForm opens the shared single-field form.
func (h *Handler) openNameForm(kind state.NameFormKind, placeholder string) {
	h.NameForm = kind
	h.NameInput.Placeholder = placeholder
	h.NameInput.SetValue("")
	h.Overlay = state.OverlayNameForm
	h.NameInput.Focus()
}

// handleNameFormKey drives the shared name form for boards, groups, and
// tags.
func (h *Handler) handleNameFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.Overlay = state.OverlayNone
		h.NameInput.Blur()
		return nil
	case "enter":
		name := h.NameInput.Value()
		h.Overlay = state.OverlayNone
		h.NameInput.Blur()
		switch h.NameForm {
		case state.NameFormBoard:
			return h.createBoard(name)
		case state.NameFormGroup:
			return h.createGroupFromSelection(name)
		case state.NameFormTag:
			return h.createTag(name)
		}
		return nil
	}
	var cmd tea.Cmd
	h.NameInput, cmd = h.NameInput.Update(msg)
	return cmd
}

// handleTagPanelKey drives the tags panel. With notes selected the panel
// assigns tags to the selection; otherwise it toggles the tag filter.
func (h *Handler) handleTagPanelKey(key string) tea.Cmd {
	switch key {
	case "esc", "F", "q":
		h.Overlay = state.OverlayNone
		return nil
	case "up", "k":
		if h.TagCursor > 0 {
			h.TagCursor--
		}
		return nil
	case "down", "j":
		if h.TagCursor < len(h.Tags)-1 {
			h.TagCursor++
		}
		return nil
	case "n":
		h.openNameForm(state.NameFormTag, "Tag name")
		return nil
	case "d", "delete":
		if h.TagCursor < len(h.Tags) {
			tag := h.Tags[h.TagCursor]
			h.Confirm = state.Confirm{Kind: state.ConfirmTag, ID: tag.ID, Name: tag.Name}
			h.Overlay = state.OverlayConfirm
		}
		return nil
	case "enter", " ":
		if h.TagCursor >= len(h.Tags) {
			return nil
		}
		tag := h.Tags[h.TagCursor]
		if h.Selection.Count() > 0 {
			return h.toggleTagOnSelection(tag.ID)
		}
		h.FilterTags[tag.ID] = !h.FilterTags[tag.ID]
		return nil
	}
	return nil
}

// toggleTagOnSelection adds the tag to every selected note, or removes it
// from all of them when every one already carries it. Each changed note
// gets its own history entry and sync.
func (h *Handler) toggleTagOnSelection(tagID string) tea.Cmd {
	ids := h.Selection.IDs()
	allHave := true
	for _, id := range ids {
		idea := h.IdeaByID(id)
		if idea == nil {
			continue
		}
		if !containsString(idea.TagIDs, tagID) {
			allHave = false
			break
		}
	}

	var cmds []tea.Cmd
	for _, id := range ids {
		idea := h.IdeaByID(id)
		if idea == nil {
			continue
		}
		before := append([]string(nil), idea.TagIDs...)
		if allHave {
			idea.TagIDs = removeString(idea.TagIDs, tagID)
		} else if !containsString(idea.TagIDs, tagID) {
			idea.TagIDs = append(idea.TagIDs, tagID)
		} else {
			continue
		}
		h.History.Push(canvas.Entry{
			Kind:   canvas.KindTags,
			NoteID: id,
			Before: canvas.Snapshot{TagIDs: before},
			After:  canvas.Snapshot{TagIDs: append([]string(nil), idea.TagIDs...)},
		})
		cmds = append(cmds, h.syncIdeaTags(id, idea.TagIDs))
	}
	return tea.Batch(cmds...)
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func removeString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// handleBoardsKey drives the boards list overlay.
func (h *Handler) handleBoardsKey(key string) tea.Cmd {
	switch key {
	case "esc", "b", "q":
		h.Overlay = state.OverlayNone
		return nil
	case "up", "k":
		if h.BoardCursor > 0 {
			h.BoardCursor--
		}
		return nil
	case "down", "j":
		if h.BoardCursor < len(h.Boards)-1 {
			h.BoardCursor++
		}
		return nil
	case "n":
		h.openNameForm(state.NameFormBoard, "Board name")
		return nil
	case "d", "delete":
		if h.BoardCursor < len(h.Boards) {
			board := h.Boards[h.BoardCursor]
			h.Confirm = state.Confirm{Kind: state.ConfirmBoard, ID: board.ID, Name: board.Name}
			h.Overlay = state.OverlayConfirm
		}
		return nil
	case "enter":
		if h.BoardCursor >= len(h.Boards) {
			return nil
		}
		board := h.Boards[h.BoardCursor]
		h.Overlay = state.OverlayNone
		if h.Board != nil && h.Board.ID == board.ID {
			return nil
		}
		return h.switchBoard(board)
	}
	return nil
}

// handleConfirmKey resolves a pending delete confirmation.
func (h *Handler) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "enter":
		confirm := h.Confirm
		h.Overlay = state.OverlayNone
		switch confirm.Kind {
		case state.ConfirmTag:
			return h.deleteTag(confirm.ID)
		case state.ConfirmGroup:
			return h.deleteGroup(confirm.ID)
		case state.ConfirmBoard:
			return h.deleteBoard(confirm.ID)
		}
		return nil
	case "n", "esc", "q":
		h.Overlay = state.OverlayNone
		return nil
	}
	return nil
}

// handleHelpKey scrolls or closes the help view.
func (h *Handler) handleHelpKey(msg tea.KeyMsg, key string) tea.Cmd {
	switch key {
	case "esc", "q", "?":
		h.Overlay = state.OverlayNone
		return nil
	}
	var cmd tea.Cmd
	h.HelpView, cmd = h.HelpView.Update(msg)
	return cmd
}

// handleSearchKey drives the focused search input. The query filters
// live as it is typed.
func (h *Handler) handleSearchKey(msg tea.KeyMsg, key string) tea.Cmd {
	switch key {
	case "esc":
		h.Searching = false
		h.SearchInput.Blur()
		h.SearchQuery = ""
		h.SearchInput.SetValue("")
		return nil
	case "enter":
		h.Searching = false
		h.SearchInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	h.SearchInput, cmd = h.SearchInput.Update(msg)
	h.SearchQuery = h.SearchInput.Value()
	return cmd
}

// cycleBoard switches to the next board in list order, wrapping.
func (h *Handler) cycleBoard() tea.Cmd {
	if len(h.Boards) < 2 || h.Board == nil {
		return nil
	}
	for i, b := range h.Boards {
		if b.ID == h.Board.ID {
			next := h.Boards[(i+1)%len(h.Boards)]
			h.BoardCursor = (i + 1) % len(h.Boards)
			return h.switchBoard(next)
		}
	}
	return nil
}

// startPresentation enters presentation mode over the visible ideas,
// ordered by votes.
func (h *Handler) startPresentation() tea.Cmd {
	if len(h.visibleIdeas()) == 0 {
		return h.showNotice("Nothing to present")
	}
	h.Presenting = true
	h.PresentIndex = 0
	return nil
}

// handlePresentationKey steps through the slides.
func (h *Handler) handlePresentationKey(key string) tea.Cmd {
	n := len(h.visibleIdeas())
	switch key {
	case "esc", "q", "p":
		h.Presenting = false
		return nil
	case "right", "l", " ", "enter", "down", "j":
		if h.PresentIndex < n-1 {
			h.PresentIndex++
		}
		return nil
	case "left", "h", "up", "k":
		if h.PresentIndex > 0 {
			h.PresentIndex--
		}
		return nil
	}
	return nil
}

// toggleTimer starts or stops the session timer.
func (h *Handler) toggleTimer() tea.Cmd {
	if h.TimerRunning {
		h.TimerRunning = false
		h.TimerRemaining = 0
		return nil
	}
	h.TimerRunning = true
	h.TimerRemaining = time.Duration(h.Config.UI.TimerMinutes) * time.Minute
	return components.Tick()
}
