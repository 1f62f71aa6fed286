package logic

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
)

// groupPadding is the margin added around the members' bounding box
// when a group is created, in canvas units.
const groupPadding = 2.0

// createGroupFromSelection builds a group around the selected notes. The
// bounding box is computed from the members' committed positions plus a
// padding margin.
func (h *Handler) createGroupFromSelection(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return h.showNotice("Group name cannot be empty")
	}
	ids := h.Selection.IDs()
	if len(ids) < 2 {
		return h.showNotice("Select at least two notes to group")
	}
	if h.Board == nil {
		return nil
	}

	first := true
	var minX, minY, maxX, maxY float64
	for _, id := range ids {
		idea := h.IdeaByID(id)
		if idea == nil {
			continue
		}
		if first {
			minX, minY = idea.X, idea.Y
			maxX, maxY = idea.X+idea.Width, idea.Y+idea.Height
			first = false
			continue
		}
		if idea.X < minX {
			minX = idea.X
		}
		if idea.Y < minY {
			minY = idea.Y
		}
		if x := idea.X + idea.Width; x > maxX {
			maxX = x
		}
		if y := idea.Y + idea.Height; y > maxY {
			maxY = y
		}
	}
	if first {
		return nil
	}

	width := maxX - minX + 2*groupPadding
	height := maxY - minY + 2*groupPadding
	if width < canvas.MinGroupWidth {
		width = canvas.MinGroupWidth
	}
	if height < canvas.MinGroupHeight {
		height = canvas.MinGroupHeight
	}

	client := h.Client
	req := api.CreateGroupRequest{
		BoardID: h.Board.ID,
		Name:    name,
		X:       minX - groupPadding,
		Y:       minY - groupPadding,
		Width:   width,
		Height:  height,
		IdeaIDs: ids,
	}
	return func() tea.Msg {
		group, err := client.CreateGroup(req)
		if err != nil {
			return createFailedMsg{what: "group", err: err}
		}
		return groupCreatedMsg{group: *group}
	}
}

// applyGroupDelta translates every member of the dragged group by one
// frame's canvas-space delta. The group frame itself renders from the
// gesture's live position, so only the members move here.
func (h *Handler) applyGroupDelta(groupID string, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for i := range h.Ideas {
		if h.Ideas[i].GroupID != nil && *h.Ideas[i].GroupID == groupID {
			h.Ideas[i].X += dx
			h.Ideas[i].Y += dy
		}
	}
}

// endGroupDrag commits a finished group move: the group's new origin and
// every member's already-translated position each get their own write.
// Group moves are not recorded in the history.
func (h *Handler) endGroupDrag() tea.Cmd {
	groupID := h.GroupGesture.GroupID
	x, y, _, _, moved := h.GroupGesture.EndDrag()
	if !moved {
		return nil
	}
	group := h.GroupByID(groupID)
	if group == nil {
		return nil
	}
	group.X = x
	group.Y = y

	cmds := []tea.Cmd{h.syncGroupPosition(groupID, x, y)}
	for i := range h.Ideas {
		if h.Ideas[i].GroupID != nil && *h.Ideas[i].GroupID == groupID {
			cmds = append(cmds, h.syncIdeaPosition(h.Ideas[i].ID, h.Ideas[i].X, h.Ideas[i].Y))
		}
	}
	return tea.Batch(cmds...)
}

// endGroupResize commits a finished frame resize. Members keep their
// positions; only the frame changes.
func (h *Handler) endGroupResize() tea.Cmd {
	groupID := h.GroupGesture.GroupID
	w, hgt, changed := h.GroupGesture.EndResize(h.Viewport.Zoom)
	if !changed {
		return nil
	}
	group := h.GroupByID(groupID)
	if group == nil {
		return nil
	}
	group.Width = w
	group.Height = hgt
	return h.syncGroupSize(groupID, w, hgt)
}
