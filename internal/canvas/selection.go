package canvas

import "sort"

// Rect is an axis-aligned rectangle in whichever coordinate space the
// caller put it in.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && r.X+r.Width >= o.X &&
		r.Y <= o.Y+o.Height && r.Y+r.Height >= o.Y
}

// Selection tracks the set of selected note IDs plus an in-progress lasso
// rectangle. A lasso resolves into the multi-select set on release; the
// render states are mutually exclusive but the underlying data is one set.
type Selection struct {
	ids map[string]struct{}

	lassoActive bool
	anchorX     float64
	anchorY     float64
	lassoX      float64
	lassoY      float64
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// ToggleSelect updates the selection for a click on id. When additive
// (ctrl held) it flips the id's membership; otherwise it replaces the
// whole set with {id}.
func (s *Selection) ToggleSelect(id string, additive bool) {
	if !additive {
		s.ids = map[string]struct{}{id: {}}
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Rename moves oldID's membership to newID. No-op when oldID is not
// selected.
func (s *Selection) Rename(oldID, newID string) {
	if _, ok := s.ids[oldID]; !ok {
		return
	}
	delete(s.ids, oldID)
	s.ids[newID] = struct{}{}
}

// Clear empties the selection set.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// IsSelected reports whether id is in the selection set.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected notes.
func (s *Selection) Count() int { return len(s.ids) }

// IDs returns the selected ids in stable order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StartLasso records the anchor point and activates lasso mode with a
// zero-size rectangle.
func (s *Selection) StartLasso(x, y float64) {
	s.lassoActive = true
	s.anchorX, s.anchorY = x, y
	s.lassoX, s.lassoY = x, y
}

// UpdateLasso moves the free corner. Anchor and current point may be in
// any order; Rect normalizes when the consumer tests containment.
func (s *Selection) UpdateLasso(x, y float64) {
	if !s.lassoActive {
		return
	}
	s.lassoX, s.lassoY = x, y
}

// EndLasso deactivates lasso mode. The last computed rectangle survives so
// the consumer can still resolve it.
func (s *Selection) EndLasso() {
	s.lassoActive = false
}

// LassoActive reports whether a lasso drag is in progress.
func (s *Selection) LassoActive() bool { return s.lassoActive }

// LassoRect returns the normalized lasso rectangle.
func (s *Selection) LassoRect() Rect {
	x, y := s.anchorX, s.anchorY
	w := s.lassoX - s.anchorX
	h := s.lassoY - s.anchorY
	if w < 0 {
		x, w = s.lassoX, -w
	}
	if h < 0 {
		y, h = s.lassoY, -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// SelectIDsInLasso commits a containment-test result into the selection
// set, replacing whatever was selected before. Containment testing itself
// is the board controller's job, evaluated in canvas coordinates.
func (s *Selection) SelectIDsInLasso(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}
