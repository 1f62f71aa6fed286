package canvas

import "strings"

// Minimum note dimensions in canvas units. Resize clamps each axis
// independently so a degenerate note cannot be produced.
const (
	MinNoteWidth  = 8.0
	MinNoteHeight = 3.0
)

// NoteState is the per-note interaction state. The states are mutually
// exclusive: one gesture at a time, on one note at a time.
type NoteState int

const (
	NoteIdle NoteState = iota
	NoteDragging
	NoteResizing
	NoteEditing
)

// NoteGesture is the drag/resize/edit state machine for a single note.
// Pointer coordinates are screen-space; note coordinates are canvas-space.
// The zoom factor enters only when a screen delta is converted to a canvas
// delta (delta / zoom).
type NoteGesture struct {
	NoteID string
	State  NoteState

	startX, startY          float64 // note position at gesture start
	startWidth, startHeight float64 // note size at gesture start
	pointerStartX           float64 // screen
	pointerStartY           float64
	pointerX, pointerY      float64

	baseTitle       string // edit snapshot
	baseDescription string
}

// BeginDrag enters the dragging state, recording the note's canvas
// position and the pointer's screen position.
func (g *NoteGesture) BeginDrag(noteID string, noteX, noteY, sx, sy float64) {
	g.NoteID = noteID
	g.State = NoteDragging
	g.startX, g.startY = noteX, noteY
	g.pointerStartX, g.pointerStartY = sx, sy
	g.pointerX, g.pointerY = sx, sy
}

// Track updates the pointer position for the active drag or resize.
func (g *NoteGesture) Track(sx, sy float64) {
	g.pointerX, g.pointerY = sx, sy
}

// DragPosition returns the note's live canvas position for the current
// pointer: the accumulated screen delta scaled by 1/zoom. Callers mirror
// this into the live-position side channel so connection endpoints stay
// attached while the note moves.
func (g *NoteGesture) DragPosition(zoom float64) (float64, float64) {
	return g.startX + (g.pointerX-g.pointerStartX)/zoom,
		g.startY + (g.pointerY-g.pointerStartY)/zoom
}

// EndDrag leaves the dragging state and returns the final canvas position
// plus whether it differs from the start. A pure click is not a drag:
// when moved is false the caller pushes no history entry and issues no
// remote update.
func (g *NoteGesture) EndDrag(zoom float64) (x, y float64, moved bool) {
	x, y = g.DragPosition(zoom)
	moved = x != g.startX || y != g.startY
	g.State = NoteIdle
	return x, y, moved
}

// BeginResize enters the resizing state from the note's resize affordance.
func (g *NoteGesture) BeginResize(noteID string, width, height, sx, sy float64) {
	g.NoteID = noteID
	g.State = NoteResizing
	g.startWidth, g.startHeight = width, height
	g.pointerStartX, g.pointerStartY = sx, sy
	g.pointerX, g.pointerY = sx, sy
}

// ResizeSize returns the live width/height for the current pointer, each
// axis floor-clamped independently.
func (g *NoteGesture) ResizeSize(zoom float64) (float64, float64) {
	w := g.startWidth + (g.pointerX-g.pointerStartX)/zoom
	h := g.startHeight + (g.pointerY-g.pointerStartY)/zoom
	if w < MinNoteWidth {
		w = MinNoteWidth
	}
	if h < MinNoteHeight {
		h = MinNoteHeight
	}
	return w, h
}

// EndResize leaves the resizing state; changed follows the same
// commit-only-if-changed rule as EndDrag.
func (g *NoteGesture) EndResize(zoom float64) (w, h float64, changed bool) {
	w, h = g.ResizeSize(zoom)
	changed = w != g.startWidth || h != g.startHeight
	g.State = NoteIdle
	return w, h, changed
}

// BeginEdit enters inline editing, snapshotting the current title and
// description as the undo baseline.
func (g *NoteGesture) BeginEdit(noteID, title, description string) {
	g.NoteID = noteID
	g.State = NoteEditing
	g.baseTitle = title
	g.baseDescription = description
}

// EditBaseline returns the snapshot taken at BeginEdit.
func (g *NoteGesture) EditBaseline() (title, description string) {
	return g.baseTitle, g.baseDescription
}

// CommitEdit leaves editing. The title is trimmed; an empty trimmed title
// discards the edit entirely (title reverts, nothing committed). Otherwise
// changed reports whether the (title, description) pair differs from the
// baseline.
func (g *NoteGesture) CommitEdit(title, description string) (outTitle, outDescription string, changed bool) {
	g.State = NoteIdle
	title = strings.TrimSpace(title)
	if title == "" {
		return g.baseTitle, g.baseDescription, false
	}
	if title == g.baseTitle && description == g.baseDescription {
		return title, description, false
	}
	return title, description, true
}

// CancelEdit reverts to the baseline and leaves editing without
// committing.
func (g *NoteGesture) CancelEdit() (title, description string) {
	g.State = NoteIdle
	return g.baseTitle, g.baseDescription
}

// Start returns the gesture's starting position (drags) or size (resizes),
// for building the history entry's before snapshot.
func (g *NoteGesture) Start() (x, y, w, h float64) {
	return g.startX, g.startY, g.startWidth, g.startHeight
}

// Active reports whether any gesture is in progress.
func (g *NoteGesture) Active() bool { return g.State != NoteIdle }
