package canvas

// Minimum group bounding-box dimensions in canvas units.
const (
	MinGroupWidth  = 12.0
	MinGroupHeight = 4.0
)

// GroupState mirrors the note interaction states, minus inline editing.
type GroupState int

const (
	GroupIdle GroupState = iota
	GroupDragging
	GroupResizing
)

// GroupGesture drags and resizes a group's bounding box. One gesture, two
// delta consumers: the cumulative delta (relative to drag start) positions
// the box itself and is committed on release; the incremental per-frame
// delta is handed to the board controller to translate every member note
// in lock-step, so notes travel with the group without per-frame remote
// writes. Both are exposed explicitly rather than re-derived.
type GroupGesture struct {
	GroupID string
	State   GroupState

	startX, startY          float64
	startWidth, startHeight float64
	pointerStartX           float64
	pointerStartY           float64
	prevX, prevY            float64 // canvas position at the previous frame
	pointerX, pointerY      float64
}

// BeginDrag enters the dragging state.
func (g *GroupGesture) BeginDrag(groupID string, groupX, groupY, sx, sy float64) {
	g.GroupID = groupID
	g.State = GroupDragging
	g.startX, g.startY = groupX, groupY
	g.prevX, g.prevY = groupX, groupY
	g.pointerStartX, g.pointerStartY = sx, sy
	g.pointerX, g.pointerY = sx, sy
}

// Track advances the drag one frame and returns the incremental canvas
// delta since the previous frame, for member fan-out.
func (g *GroupGesture) Track(sx, sy float64, zoom float64) (dx, dy float64) {
	g.pointerX, g.pointerY = sx, sy
	x := g.startX + (g.pointerX-g.pointerStartX)/zoom
	y := g.startY + (g.pointerY-g.pointerStartY)/zoom
	dx, dy = x-g.prevX, y-g.prevY
	g.prevX, g.prevY = x, y
	return dx, dy
}

// Position returns the box's live canvas position.
func (g *GroupGesture) Position() (float64, float64) {
	return g.prevX, g.prevY
}

// EndDrag leaves the dragging state and returns the final position plus
// the cumulative canvas delta since drag start, which is what gets
// committed remotely. moved is false for a pure click.
func (g *GroupGesture) EndDrag() (x, y, totalDX, totalDY float64, moved bool) {
	x, y = g.prevX, g.prevY
	totalDX, totalDY = x-g.startX, y-g.startY
	moved = totalDX != 0 || totalDY != 0
	g.State = GroupIdle
	return x, y, totalDX, totalDY, moved
}

// BeginResize enters the resizing state from the box's resize affordance.
func (g *GroupGesture) BeginResize(groupID string, width, height, sx, sy float64) {
	g.GroupID = groupID
	g.State = GroupResizing
	g.startWidth, g.startHeight = width, height
	g.pointerStartX, g.pointerStartY = sx, sy
	g.pointerX, g.pointerY = sx, sy
}

// TrackResize updates the pointer during a resize.
func (g *GroupGesture) TrackResize(sx, sy float64) {
	g.pointerX, g.pointerY = sx, sy
}

// ResizeSize returns the live clamped bounding-box size.
func (g *GroupGesture) ResizeSize(zoom float64) (float64, float64) {
	w := g.startWidth + (g.pointerX-g.pointerStartX)/zoom
	h := g.startHeight + (g.pointerY-g.pointerStartY)/zoom
	if w < MinGroupWidth {
		w = MinGroupWidth
	}
	if h < MinGroupHeight {
		h = MinGroupHeight
	}
	return w, h
}

// EndResize leaves the resizing state with the usual
// commit-only-if-changed rule.
func (g *GroupGesture) EndResize(zoom float64) (w, h float64, changed bool) {
	w, h = g.ResizeSize(zoom)
	changed = w != g.startWidth || h != g.startHeight
	g.State = GroupIdle
	return w, h, changed
}

// Start returns the gesture's starting geometry.
func (g *GroupGesture) Start() (x, y, w, h float64) {
	return g.startX, g.startY, g.startWidth, g.startHeight
}

// Active reports whether a group gesture is in progress.
func (g *GroupGesture) Active() bool { return g.State != GroupIdle }
