package logic

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/tui/components"
	"github.com/hy4ri/ideaboard/internal/tui/state"
)

// Update routes a message to the right handler and returns any
// follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		h.HelpView.Width = msg.Width - 8
		h.HelpView.Height = msg.Height - 6
		return nil

	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case spinner.TickMsg:
		if !h.Loading && !h.AIBusy {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case components.TimerTickMsg:
		return h.handleTimerTick()

	case dataLoadedMsg:
		h.Loading = false
		h.Boards = msg.boards
		if msg.board == nil {
			h.StatusMsg = "No boards yet. Press b to create one."
			return nil
		}
		h.Board = msg.board
		h.Ideas = msg.ideas
		h.Tags = msg.tags
		h.Connections = msg.connections
		h.Groups = msg.groups
		h.StatusMsg = ""
		return nil

	case boardLoadFailedMsg:
		h.Loading = false
		logf("board switch failed: %v", msg.err)
		return h.showNotice("Failed to load board: " + msg.name)

	case boardDataMsg:
		h.Loading = false
		board := msg.board
		h.Board = &board
		h.Ideas = msg.ideas
		h.Connections = msg.connections
		h.Groups = msg.groups
		h.ResetBoardState()
		return nil

	case ideaCreatedMsg:
		// Swap the optimistic placeholder for the server's record. The
		// selection and any in-flight gesture follow the new id.
		h.Selection.Rename(msg.tempID, msg.idea.ID)
		if h.NoteGesture.NoteID == msg.tempID {
			h.NoteGesture.NoteID = msg.idea.ID
		}
		for i := range h.Ideas {
			if h.Ideas[i].ID == msg.tempID {
				msg.idea.X = h.Ideas[i].X
				msg.idea.Y = h.Ideas[i].Y
				h.Ideas[i] = msg.idea
				return nil
			}
		}
		h.Ideas = append(h.Ideas, msg.idea)
		return nil

	case createFailedMsg:
		logf("create %s failed: %v", msg.what, msg.err)
		return h.showNotice("Could not create " + msg.what)

	case deleteFailedMsg:
		logf("delete %s failed: %v", msg.what, msg.err)
		return h.showNotice("Could not delete " + msg.what)

	case writeFailedMsg:
		// Position, size, content, and vote writes are fire-and-forget;
		// a failure is recorded but never rolls back the local state.
		logf("%s failed: %v", msg.op, msg.err)
		return nil

	case voteMsg:
		for i := range h.Ideas {
			if h.Ideas[i].ID == msg.idea.ID {
				h.Ideas[i].Votes = msg.idea.Votes
				break
			}
		}
		return nil

	case tagCreatedMsg:
		h.Tags = append(h.Tags, msg.tag)
		return nil

	case tagDeletedMsg:
		h.removeTag(msg.tagID)
		return nil

	case connectionCreatedMsg:
		h.Connections = append(h.Connections, msg.connection)
		return nil

	case groupCreatedMsg:
		h.Groups = append(h.Groups, msg.group)
		h.adoptGroupMembers(msg.group)
		return nil

	case groupDeletedMsg:
		h.removeGroup(msg.groupID)
		return nil

	case boardCreatedMsg:
		h.Boards = append(h.Boards, msg.board)
		return h.switchBoard(msg.board)

	case boardDeletedMsg:
		return h.handleBoardDeleted(msg.boardID)

	case aiResultMsg:
		h.AIBusy = false
		h.AITitle = msg.title
		h.AIText = msg.text
		h.Overlay = state.OverlayAI
		return nil

	case aiFailedMsg:
		h.AIBusy = false
		if errors.Is(msg.err, api.ErrAINotConfigured) {
			return h.showNotice("AI features are not configured on the server")
		}
		logf("ai request failed: %v", msg.err)
		return h.showNotice("AI request failed")

	case timerDoneMsg:
		return nil

	case noticeMsg:
		return h.showNotice(msg.text)

	case noticeExpiredMsg:
		if msg.seq == h.NoticeSeq {
			h.Notice = ""
		}
		return nil

	case errMsg:
		h.Loading = false
		logf("load failed: %v", msg.err)
		if h.Board == nil {
			h.StatusMsg = "Could not reach the board server. Press r to retry."
		}
		return h.showNotice("Request failed: " + msg.err.Error())
	}

	return nil
}

// handleTimerTick counts the session timer down and notifies when it
// reaches zero.
func (h *Handler) handleTimerTick() tea.Cmd {
	if !h.TimerRunning {
		return nil
	}
	h.TimerRemaining -= time.Second
	if h.TimerRemaining > 0 {
		return components.Tick()
	}
	h.TimerRunning = false
	h.TimerRemaining = 0
	notify := h.Config.UI.Notifications
	cmds := []tea.Cmd{h.showNotice("Time's up!")}
	if notify {
		cmds = append(cmds, func() tea.Msg {
			if err := beeep.Notify("Idea Board", "Session timer finished", ""); err != nil {
				logf("notification failed: %v", err)
			}
			return timerDoneMsg{}
		})
	}
	return tea.Batch(cmds...)
}

// handleBoardDeleted drops the board locally and moves to the next
// available one.
func (h *Handler) handleBoardDeleted(boardID string) tea.Cmd {
	kept := h.Boards[:0]
	for _, b := range h.Boards {
		if b.ID != boardID {
			kept = append(kept, b)
		}
	}
	h.Boards = kept
	if h.BoardCursor >= len(h.Boards) {
		h.BoardCursor = len(h.Boards) - 1
	}
	if h.BoardCursor < 0 {
		h.BoardCursor = 0
	}
	if h.Board == nil || h.Board.ID != boardID {
		return nil
	}
	if len(h.Boards) == 0 {
		h.Board = nil
		h.Ideas = nil
		h.Connections = nil
		h.Groups = nil
		h.ResetBoardState()
		h.StatusMsg = "No boards yet. Press b to create one."
		return nil
	}
	return h.switchBoard(h.Boards[h.BoardCursor])
}

// removeTag deletes a tag everywhere it is referenced.
func (h *Handler) removeTag(tagID string) {
	kept := h.Tags[:0]
	for _, t := range h.Tags {
		if t.ID != tagID {
			kept = append(kept, t)
		}
	}
	h.Tags = kept

	delete(h.FilterTags, tagID)

	for i := range h.Ideas {
		ids := h.Ideas[i].TagIDs[:0]
		for _, id := range h.Ideas[i].TagIDs {
			if id != tagID {
				ids = append(ids, id)
			}
		}
		h.Ideas[i].TagIDs = ids
	}
}

// removeGroup deletes a group and detaches its members.
func (h *Handler) removeGroup(groupID string) {
	kept := h.Groups[:0]
	for _, g := range h.Groups {
		if g.ID != groupID {
			kept = append(kept, g)
		}
	}
	h.Groups = kept

	for i := range h.Ideas {
		if h.Ideas[i].GroupID != nil && *h.Ideas[i].GroupID == groupID {
			h.Ideas[i].GroupID = nil
		}
	}
}

// adoptGroupMembers stamps the new group onto its member ideas.
func (h *Handler) adoptGroupMembers(group api.Group) {
	members := make(map[string]bool, len(group.IdeaIDs))
	for _, id := range group.IdeaIDs {
		members[id] = true
	}
	gid := group.ID
	for i := range h.Ideas {
		if members[h.Ideas[i].ID] {
			h.Ideas[i].GroupID = &gid
		}
	}
}
