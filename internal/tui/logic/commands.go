package logic

import (
	"math/rand"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hy4ri/ideaboard/internal/api"
)

// Default dimensions for a freshly created note, in canvas units.
const (
	newNoteWidth  = 20.0
	newNoteHeight = 6.0
)

// createIdea adds a note optimistically under a temporary id and posts
// the create in the background. The placeholder is swapped for the
// server record when the response lands; on failure it stays and the
// user gets a notice. Creates are not undoable.
func (h *Handler) createIdea(color api.Color, x, y float64) tea.Cmd {
	if h.Board == nil {
		return h.showNotice("No board selected")
	}
	if color == "" {
		color = api.ColorYellow
	}

	tempID := "tmp-" + uuid.NewString()
	rotation := (rand.Float64() - 0.5) * 4
	idea := api.Idea{
		ID:       tempID,
		BoardID:  h.Board.ID,
		Title:    "New idea",
		Color:    color,
		X:        x,
		Y:        y,
		Width:    newNoteWidth,
		Height:   newNoteHeight,
		Rotation: rotation,
	}
	h.Ideas = append(h.Ideas, idea)
	h.Selection.Clear()
	h.Selection.ToggleSelect(tempID, false)

	client := h.Client
	req := api.CreateIdeaRequest{
		BoardID:  idea.BoardID,
		Title:    idea.Title,
		Color:    idea.Color,
		X:        idea.X,
		Y:        idea.Y,
		Width:    idea.Width,
		Height:   idea.Height,
		Rotation: idea.Rotation,
	}
	return func() tea.Msg {
		created, err := client.CreateIdea(req)
		if err != nil {
			return createFailedMsg{what: "note", err: err}
		}
		return ideaCreatedMsg{tempID: tempID, idea: *created}
	}
}

// deleteSelected removes every selected note locally, drops their
// connections and group memberships, and fires the deletes. Deletes are
// not undoable.
func (h *Handler) deleteSelected() tea.Cmd {
	ids := h.Selection.IDs()
	if len(ids) == 0 {
		return nil
	}
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	kept := h.Ideas[:0]
	for _, idea := range h.Ideas {
		if !doomed[idea.ID] {
			kept = append(kept, idea)
		}
	}
	h.Ideas = kept

	// The server cascades connection deletion; mirror that locally.
	conns := h.Connections[:0]
	for _, c := range h.Connections {
		if !doomed[c.SourceID] && !doomed[c.TargetID] {
			conns = append(conns, c)
		}
	}
	h.Connections = conns

	h.Selection.Clear()

	client := h.Client
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		if strings.HasPrefix(id, "tmp-") {
			continue
		}
		noteID := id
		cmds = append(cmds, func() tea.Msg {
			if err := client.DeleteIdea(noteID); err != nil {
				return deleteFailedMsg{what: "note", err: err}
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// voteSelected bumps the vote count locally and reconciles with the
// server's count when the response arrives.
func (h *Handler) voteSelected() tea.Cmd {
	ids := h.Selection.IDs()
	if len(ids) != 1 {
		return h.showNotice("Select one note to vote")
	}
	idea := h.IdeaByID(ids[0])
	if idea == nil {
		return nil
	}
	idea.Votes++

	client := h.Client
	id := idea.ID
	return func() tea.Msg {
		updated, err := client.VoteIdea(id)
		if err != nil {
			return writeFailedMsg{op: "vote " + id, err: err}
		}
		return voteMsg{idea: *updated}
	}
}

// copySelected puts the selected note's text on the system clipboard.
func (h *Handler) copySelected() tea.Cmd {
	ids := h.Selection.IDs()
	if len(ids) != 1 {
		return h.showNotice("Select one note to copy")
	}
	idea := h.IdeaByID(ids[0])
	if idea == nil {
		return nil
	}
	text := idea.Title
	if idea.Description != "" {
		text += "\n" + idea.Description
	}
	if err := clipboard.WriteAll(text); err != nil {
		logf("clipboard write failed: %v", err)
		return h.showNotice("Clipboard unavailable")
	}
	return h.showNotice("Copied to clipboard")
}

// createConnection posts the typed edge recorded by the connector.
func (h *Handler) createConnection(sourceID, targetID string) tea.Cmd {
	if h.Board == nil {
		return nil
	}
	client := h.Client
	req := api.CreateConnectionRequest{
		BoardID:  h.Board.ID,
		SourceID: sourceID,
		TargetID: targetID,
		Type:     api.ConnectionRelates,
	}
	return func() tea.Msg {
		conn, err := client.CreateConnection(req)
		if err != nil {
			return createFailedMsg{what: "connection", err: err}
		}
		return connectionCreatedMsg{connection: *conn}
	}
}

// toggleConnection connects the pair, or removes the existing edge
// when the two notes are already connected in either direction.
func (h *Handler) toggleConnection(sourceID, targetID string) tea.Cmd {
	for _, c := range h.Connections {
		if (c.SourceID == sourceID && c.TargetID == targetID) ||
			(c.SourceID == targetID && c.TargetID == sourceID) {
			return h.deleteConnection(c.ID)
		}
	}
	return h.createConnection(sourceID, targetID)
}

// deleteConnection drops the edge locally and tells the server.
func (h *Handler) deleteConnection(connID string) tea.Cmd {
	kept := h.Connections[:0]
	for _, c := range h.Connections {
		if c.ID != connID {
			kept = append(kept, c)
		}
	}
	h.Connections = kept

	client := h.Client
	return func() tea.Msg {
		if err := client.DeleteConnection(connID); err != nil {
			return deleteFailedMsg{what: "connection", err: err}
		}
		return nil
	}
}

// createTag posts a new tag; duplicate names come back as a conflict.
func (h *Handler) createTag(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return h.showNotice("Tag name cannot be empty")
	}
	client := h.Client
	return func() tea.Msg {
		tag, err := client.CreateTag(api.CreateTagRequest{Name: name})
		if err != nil {
			if apiErr, ok := api.IsAPIError(err); ok && apiErr.IsConflict() {
				return noticeMsg{text: "Tag already exists: " + name}
			}
			return createFailedMsg{what: "tag", err: err}
		}
		return tagCreatedMsg{tag: *tag}
	}
}

// deleteTag fires the delete; local removal happens when it confirms, so
// a failed delete never leaves the tag half-gone.
func (h *Handler) deleteTag(id string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.DeleteTag(id); err != nil {
			return deleteFailedMsg{what: "tag", err: err}
		}
		return tagDeletedMsg{tagID: id}
	}
}

// syncIdeaTags writes an idea's tag set; best effort.
func (h *Handler) syncIdeaTags(id string, tagIDs []string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateIdeaTags(id, tagIDs); err != nil {
			return writeFailedMsg{op: "tags " + id, err: err}
		}
		return nil
	}
}

// createBoard posts a new board and switches to it on success.
func (h *Handler) createBoard(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return h.showNotice("Board name cannot be empty")
	}
	client := h.Client
	return func() tea.Msg {
		board, err := client.CreateBoard(api.CreateBoardRequest{Name: name})
		if err != nil {
			return createFailedMsg{what: "board", err: err}
		}
		return boardCreatedMsg{board: *board}
	}
}

// deleteBoard fires the delete and reconciles locally on confirmation.
func (h *Handler) deleteBoard(id string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.DeleteBoard(id); err != nil {
			return deleteFailedMsg{what: "board", err: err}
		}
		return boardDeletedMsg{boardID: id}
	}
}

// deleteGroup fires the delete; members are detached locally when it
// confirms. Member notes are never deleted with their group.
func (h *Handler) deleteGroup(id string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.DeleteGroup(id); err != nil {
			return deleteFailedMsg{what: "group", err: err}
		}
		return groupDeletedMsg{groupID: id}
	}
}

// toggleGroupCollapsed flips the flag locally and syncs it.
func (h *Handler) toggleGroupCollapsed(group *api.Group) tea.Cmd {
	group.IsCollapsed = !group.IsCollapsed
	collapsed := group.IsCollapsed
	client := h.Client
	id := group.ID
	return func() tea.Msg {
		_, err := client.UpdateGroup(id, api.UpdateGroupRequest{IsCollapsed: &collapsed})
		if err != nil {
			return writeFailedMsg{op: "group collapse " + id, err: err}
		}
		return nil
	}
}

// syncIdeaPosition writes a committed drag; best effort, never rolled back.
func (h *Handler) syncIdeaPosition(id string, x, y float64) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateIdeaPosition(id, x, y); err != nil {
			return writeFailedMsg{op: "position " + id, err: err}
		}
		return nil
	}
}

// syncIdeaSize writes a committed resize.
func (h *Handler) syncIdeaSize(id string, w, hgt float64) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateIdeaSize(id, w, hgt); err != nil {
			return writeFailedMsg{op: "size " + id, err: err}
		}
		return nil
	}
}

// syncIdeaContent writes a committed edit.
func (h *Handler) syncIdeaContent(id, title, description string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateIdeaContent(id, title, description); err != nil {
			return writeFailedMsg{op: "content " + id, err: err}
		}
		return nil
	}
}

// syncGroupPosition writes a committed group move.
func (h *Handler) syncGroupPosition(id string, x, y float64) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateGroupPosition(id, x, y); err != nil {
			return writeFailedMsg{op: "group position " + id, err: err}
		}
		return nil
	}
}

// syncGroupSize writes a committed group resize.
func (h *Handler) syncGroupSize(id string, w, hgt float64) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		if err := client.UpdateGroupSize(id, w, hgt); err != nil {
			return writeFailedMsg{op: "group size " + id, err: err}
		}
		return nil
	}
}

// requestSummary asks the server's AI endpoint for a board summary.
func (h *Handler) requestSummary() tea.Cmd {
	if h.Board == nil || h.AIBusy {
		return nil
	}
	h.AIBusy = true
	client := h.Client
	boardID := h.Board.ID
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		resp, err := client.Summarize(boardID)
		if err != nil {
			return aiFailedMsg{err: err}
		}
		return aiResultMsg{title: "Board summary", text: resp.Summary}
	})
}

// requestSuggestions asks for AI idea suggestions.
func (h *Handler) requestSuggestions() tea.Cmd {
	if h.Board == nil || h.AIBusy {
		return nil
	}
	h.AIBusy = true
	client := h.Client
	boardID := h.Board.ID
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		resp, err := client.Suggestions(boardID)
		if err != nil {
			return aiFailedMsg{err: err}
		}
		var b strings.Builder
		for _, s := range resp.Suggestions {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
		return aiResultMsg{title: "Suggestions", text: b.String()}
	})
}

// requestCategorize asks for AI tag proposals per idea and renders them
// against the current idea titles.
func (h *Handler) requestCategorize() tea.Cmd {
	if h.Board == nil || h.AIBusy {
		return nil
	}
	h.AIBusy = true
	client := h.Client
	boardID := h.Board.ID
	titles := make(map[string]string, len(h.Ideas))
	for _, idea := range h.Ideas {
		titles[idea.ID] = idea.Title
	}
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		resp, err := client.Categorize(boardID)
		if err != nil {
			return aiFailedMsg{err: err}
		}
		var b strings.Builder
		for ideaID, tags := range resp.Categories {
			title := titles[ideaID]
			if title == "" {
				title = ideaID
			}
			b.WriteString(title)
			b.WriteString(": ")
			b.WriteString(strings.Join(tags, ", "))
			b.WriteString("\n")
		}
		return aiResultMsg{title: "Suggested categories", text: b.String()}
	})
}
