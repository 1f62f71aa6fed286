package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/canvas"
)

// undo rolls the newest history entry back and re-syncs the server to
// the restored values.
func (h *Handler) undo() tea.Cmd {
	entry := h.History.Undo()
	if entry == nil {
		return nil
	}
	return h.applySnapshot(entry, entry.Before)
}

// redo re-applies the most recently undone entry.
func (h *Handler) redo() tea.Cmd {
	entry := h.History.Redo()
	if entry == nil {
		return nil
	}
	return h.applySnapshot(entry, entry.After)
}

// applySnapshot writes one side of a history entry into the local note
// and fires the matching best-effort sync. A note deleted since the
// entry was recorded is skipped; the entry has already moved, so the
// next undo/redo proceeds past it.
func (h *Handler) applySnapshot(entry *canvas.Entry, snap canvas.Snapshot) tea.Cmd {
	idea := h.IdeaByID(entry.NoteID)
	if idea == nil {
		return nil
	}
	switch entry.Kind {
	case canvas.KindPosition:
		idea.X = snap.X
		idea.Y = snap.Y
		return h.syncIdeaPosition(idea.ID, snap.X, snap.Y)
	case canvas.KindSize:
		idea.Width = snap.Width
		idea.Height = snap.Height
		return h.syncIdeaSize(idea.ID, snap.Width, snap.Height)
	case canvas.KindContent:
		idea.Title = snap.Title
		idea.Description = snap.Description
		return h.syncIdeaContent(idea.ID, snap.Title, snap.Description)
	case canvas.KindTags:
		idea.TagIDs = append([]string(nil), snap.TagIDs...)
		return h.syncIdeaTags(idea.ID, idea.TagIDs)
	}
	return nil
}
