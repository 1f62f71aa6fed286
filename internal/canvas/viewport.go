// Package canvas implements the board interaction engine: the pan/zoom
// coordinate transform, the undo/redo history log, selection and lasso
// state, and the per-gesture state machines for dragging, resizing and
// connecting notes. Everything here is pure state and arithmetic; remote
// synchronization and rendering live with the callers.
package canvas

const (
	// DefaultMinZoom and DefaultMaxZoom bound the zoom factor.
	DefaultMinZoom = 0.25
	DefaultMaxZoom = 3.0

	// DefaultZoomStep is the increment used by ZoomIn/ZoomOut.
	DefaultZoomStep = 0.1
)

// Viewport owns the zoom factor and pan offset and converts between
// screen and canvas coordinate spaces. Zoom is clamped into
// [MinZoom, MaxZoom] on every mutation; the pan offset is unbounded.
type Viewport struct {
	Zoom    float64
	PanX    float64
	PanY    float64
	MinZoom float64
	MaxZoom float64
	Step    float64
}

// NewViewport returns a viewport at zoom 1 with no pan offset.
func NewViewport() *Viewport {
	return &Viewport{
		Zoom:    1.0,
		MinZoom: DefaultMinZoom,
		MaxZoom: DefaultMaxZoom,
		Step:    DefaultZoomStep,
	}
}

func (v *Viewport) clamp(zoom float64) float64 {
	if zoom < v.MinZoom {
		return v.MinZoom
	}
	if zoom > v.MaxZoom {
		return v.MaxZoom
	}
	return zoom
}

// ZoomIn increases the zoom factor by one step, clamped.
func (v *Viewport) ZoomIn() {
	v.Zoom = v.clamp(v.Zoom + v.Step)
}

// ZoomOut decreases the zoom factor by one step, clamped.
func (v *Viewport) ZoomOut() {
	v.Zoom = v.clamp(v.Zoom - v.Step)
}

// SetZoom sets the zoom factor directly, clamped.
func (v *Viewport) SetZoom(zoom float64) {
	v.Zoom = v.clamp(zoom)
}

// ResetZoom restores zoom 1 and a zero pan offset in one step.
func (v *Viewport) ResetZoom() {
	v.Zoom = 1.0
	v.PanX = 0
	v.PanY = 0
}

// Pan shifts the pan offset by a delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// SetPan sets the pan offset absolutely.
func (v *Viewport) SetPan(x, y float64) {
	v.PanX = x
	v.PanY = y
}

// ScreenToCanvas converts screen coordinates to canvas coordinates.
// All gesture math and hit testing must go through this exact formula;
// any divergence misaligns the cursor and the manipulated object.
func (v *Viewport) ScreenToCanvas(sx, sy float64) (float64, float64) {
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// CanvasToScreen is the inverse of ScreenToCanvas.
func (v *Viewport) CanvasToScreen(cx, cy float64) (float64, float64) {
	return cx*v.Zoom + v.PanX, cy*v.Zoom + v.PanY
}
