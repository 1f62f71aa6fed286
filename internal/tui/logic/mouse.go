package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
	"github.com/hy4ri/ideaboard/internal/tui/components"
	"github.com/hy4ri/ideaboard/internal/tui/state"
)

// doubleClickWindow is the maximum gap between two presses on the same
// note for the second one to open the editor.
const doubleClickWindow = 400 * time.Millisecond

// wheelPanStep is the screen-cell pan distance per wheel notch.
const wheelPanStep = 2.0

// handleMouseMsg routes pointer input. All coordinates are translated
// into canvas-area screen space before they reach the gesture machines;
// the header rows never see the transform.
func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.Presenting || h.Overlay != state.OverlayNone {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Ctrl {
			h.Viewport.SetZoom(h.Viewport.Zoom + h.Viewport.Step)
		} else {
			h.Viewport.Pan(0, wheelPanStep)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if msg.Ctrl {
			h.Viewport.SetZoom(h.Viewport.Zoom - h.Viewport.Step)
		} else {
			h.Viewport.Pan(0, -wheelPanStep)
		}
		return nil
	case tea.MouseButtonWheelLeft:
		h.Viewport.Pan(wheelPanStep, 0)
		return nil
	case tea.MouseButtonWheelRight:
		h.Viewport.Pan(-wheelPanStep, 0)
		return nil
	}

	sx := float64(msg.X)
	sy := float64(msg.Y - state.HeaderRows)

	switch msg.Action {
	case tea.MouseActionPress:
		return h.mousePress(msg, sx, sy)
	case tea.MouseActionMotion:
		return h.mouseMotion(sx, sy)
	case tea.MouseActionRelease:
		return h.mouseRelease(msg, sx, sy)
	}
	return nil
}

func (h *Handler) mousePress(msg tea.MouseMsg, sx, sy float64) tea.Cmd {
	// Middle button always pans.
	if msg.Button == tea.MouseButtonMiddle {
		h.Panning = true
		h.LastPanX, h.LastPanY = sx, sy
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	// The palette row sits below the canvas; a press on a swatch arms
	// its color for drop-to-create.
	if msg.Y == h.Height-state.FooterRows {
		if color, ok := components.PaletteSwatchAt(msg.X); ok {
			h.ArmedColor = color
		}
		return nil
	}
	if msg.Y < state.HeaderRows || msg.Y >= h.Height-state.FooterRows {
		return nil
	}

	if h.PanMode {
		h.Panning = true
		h.LastPanX, h.LastPanY = sx, sy
		return nil
	}

	// While a palette color is armed the press is the start of a drop;
	// the note is created on release.
	if h.ArmedColor != "" {
		return nil
	}

	// Notes hit-test front to back: later in the slice renders on top.
	if idea, corner := h.ideaAt(sx, sy); idea != nil {
		return h.pressOnNote(msg, idea, corner, sx, sy)
	}

	if group, region := h.groupAt(sx, sy); group != nil {
		return h.pressOnGroup(group, region, sx, sy)
	}

	// Empty canvas.
	h.Connector.ClickEmpty()
	h.LastClickID = ""
	h.Selection.StartLasso(sx, sy)
	return nil
}

func (h *Handler) pressOnNote(msg tea.MouseMsg, idea *api.Idea, corner bool, sx, sy float64) tea.Cmd {
	if h.Connector.Active() {
		source, target, done := h.Connector.ClickNote(idea.ID)
		if done {
			return h.toggleConnection(source, target)
		}
		return nil
	}

	now := time.Now()
	doubleClick := idea.ID == h.LastClickID && now.Sub(h.LastClickAt) <= doubleClickWindow
	h.LastClickID = idea.ID
	h.LastClickAt = now

	if doubleClick {
		return h.beginEdit(idea)
	}

	if corner {
		h.NoteGesture.BeginResize(idea.ID, idea.Width, idea.Height, sx, sy)
		return nil
	}

	if msg.Ctrl {
		h.Selection.ToggleSelect(idea.ID, true)
		return nil
	}
	if !h.Selection.IsSelected(idea.ID) {
		h.Selection.ToggleSelect(idea.ID, false)
	}
	h.NoteGesture.BeginDrag(idea.ID, idea.X, idea.Y, sx, sy)
	return nil
}

// groupRegion identifies which part of a group frame a press landed on.
type groupRegion int

const (
	groupHeader groupRegion = iota
	groupCorner
	groupCollapse
)

func (h *Handler) pressOnGroup(group *api.Group, region groupRegion, sx, sy float64) tea.Cmd {
	h.LastClickID = ""
	switch region {
	case groupCollapse:
		return h.toggleGroupCollapsed(group)
	case groupCorner:
		h.GroupGesture.BeginResize(group.ID, group.Width, group.Height, sx, sy)
		return nil
	default:
		h.GroupGesture.BeginDrag(group.ID, group.X, group.Y, sx, sy)
		return nil
	}
}

func (h *Handler) mouseMotion(sx, sy float64) tea.Cmd {
	if h.Panning {
		h.Viewport.Pan(sx-h.LastPanX, sy-h.LastPanY)
		h.LastPanX, h.LastPanY = sx, sy
		return nil
	}

	switch h.NoteGesture.State {
	case canvas.NoteDragging, canvas.NoteResizing:
		h.NoteGesture.Track(sx, sy)
		return nil
	}

	switch h.GroupGesture.State {
	case canvas.GroupDragging:
		dx, dy := h.GroupGesture.Track(sx, sy, h.Viewport.Zoom)
		h.applyGroupDelta(h.GroupGesture.GroupID, dx, dy)
		return nil
	case canvas.GroupResizing:
		h.GroupGesture.TrackResize(sx, sy)
		return nil
	}

	if h.Selection.LassoActive() {
		h.Selection.UpdateLasso(sx, sy)
		return nil
	}

	if h.Connector.State == canvas.ConnectConnecting {
		cx, cy := h.Viewport.ScreenToCanvas(sx, sy)
		h.Connector.TrackPointer(cx, cy)
	}
	return nil
}

func (h *Handler) mouseRelease(msg tea.MouseMsg, sx, sy float64) tea.Cmd {
	if h.Panning {
		h.Panning = false
		return nil
	}

	// Drop an armed palette color onto the canvas.
	if h.ArmedColor != "" && msg.Y >= state.HeaderRows && msg.Y < h.Height-state.FooterRows {
		color := h.ArmedColor
		h.ArmedColor = ""
		cx, cy := h.Viewport.ScreenToCanvas(sx, sy)
		return h.createIdea(color, cx, cy)
	}

	switch h.NoteGesture.State {
	case canvas.NoteDragging:
		return h.endNoteDrag()
	case canvas.NoteResizing:
		return h.endNoteResize()
	}

	switch h.GroupGesture.State {
	case canvas.GroupDragging:
		return h.endGroupDrag()
	case canvas.GroupResizing:
		return h.endGroupResize()
	}

	if h.Selection.LassoActive() {
		h.resolveLasso()
	}
	return nil
}

// endNoteDrag commits a finished note move. An in-place release changes
// nothing: no write, no history entry.
func (h *Handler) endNoteDrag() tea.Cmd {
	noteID := h.NoteGesture.NoteID
	startX, startY, _, _ := h.NoteGesture.Start()
	x, y, moved := h.NoteGesture.EndDrag(h.Viewport.Zoom)
	if !moved {
		return nil
	}
	idea := h.IdeaByID(noteID)
	if idea == nil {
		return nil
	}
	idea.X, idea.Y = x, y
	h.History.Push(canvas.Entry{
		Kind:   canvas.KindPosition,
		NoteID: noteID,
		Before: canvas.Snapshot{X: startX, Y: startY},
		After:  canvas.Snapshot{X: x, Y: y},
	})
	return h.syncIdeaPosition(noteID, x, y)
}

// endNoteResize commits a finished resize under the same suppression
// rule as drags.
func (h *Handler) endNoteResize() tea.Cmd {
	noteID := h.NoteGesture.NoteID
	_, _, startW, startH := h.NoteGesture.Start()
	w, hgt, changed := h.NoteGesture.EndResize(h.Viewport.Zoom)
	if !changed {
		return nil
	}
	idea := h.IdeaByID(noteID)
	if idea == nil {
		return nil
	}
	idea.Width, idea.Height = w, hgt
	h.History.Push(canvas.Entry{
		Kind:   canvas.KindSize,
		NoteID: noteID,
		Before: canvas.Snapshot{Width: startW, Height: startH},
		After:  canvas.Snapshot{Width: w, Height: hgt},
	})
	return h.syncIdeaSize(noteID, w, hgt)
}

// ideaAt finds the topmost visible note under a screen point, and
// whether the point sits on its resize corner. Notes in a collapsed
// group are not hit-testable.
func (h *Handler) ideaAt(sx, sy float64) (*api.Idea, bool) {
	visible := h.visibleIdeas()
	for i := len(visible) - 1; i >= 0; i-- {
		idea := h.IdeaByID(visible[i].ID)
		if idea == nil {
			continue
		}
		if g := h.ideaGroup(idea); g != nil && g.IsCollapsed {
			continue
		}
		x, y := h.IdeaPosition(idea)
		w, hgt := h.IdeaSize(idea)
		left, top := h.Viewport.CanvasToScreen(x, y)
		width := w * h.Viewport.Zoom
		height := hgt * h.Viewport.Zoom
		if sx < left || sx >= left+width || sy < top || sy >= top+height {
			continue
		}
		corner := sx >= left+width-2 && sy >= top+height-1
		return idea, corner
	}
	return nil, false
}

func (h *Handler) ideaGroup(idea *api.Idea) *api.Group {
	if idea.GroupID == nil {
		return nil
	}
	return h.GroupByID(*idea.GroupID)
}

// groupAt finds the group whose frame chrome sits under a screen point.
// Only the header row, the collapse glyph, and the resize corner are
// interactive; the frame's interior belongs to the notes inside it.
func (h *Handler) groupAt(sx, sy float64) (*api.Group, groupRegion) {
	for i := len(h.Groups) - 1; i >= 0; i-- {
		group := &h.Groups[i]
		rect := h.GroupRect(group)
		left, top := h.Viewport.CanvasToScreen(rect.X, rect.Y)
		width := rect.Width * h.Viewport.Zoom
		height := rect.Height * h.Viewport.Zoom
		if group.IsCollapsed {
			height = 1
		}

		onHeader := sy >= top && sy < top+1 && sx >= left && sx < left+width
		if onHeader {
			if sx < left+3 {
				return group, groupCollapse
			}
			return group, groupHeader
		}
		if group.IsCollapsed {
			continue
		}
		if sx >= left+width-2 && sx < left+width && sy >= top+height-1 && sy < top+height {
			return group, groupCorner
		}
	}
	return nil, 0
}
