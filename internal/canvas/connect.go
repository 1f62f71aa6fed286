package canvas

import "math"

// MaxCurveOffset caps the control-point offset so long edges do not bow
// out of proportion.
const MaxCurveOffset = 10.0

// ConnectState is the edge-drawing mode state machine.
type ConnectState int

const (
	ConnectInactive ConnectState = iota
	ConnectSelectingSource
	ConnectConnecting
)

// Connector tracks an in-progress connection between two notes. While
// connecting, the rubber-band endpoint follows the pointer in canvas
// coordinates (the caller converts through the viewport transform).
type Connector struct {
	State    ConnectState
	SourceID string

	// Rubber-band endpoint, canvas space.
	PointerX float64
	PointerY float64
}

// Toggle flips connect mode on or off. Turning it off cancels any
// in-progress connection.
func (c *Connector) Toggle() {
	if c.State == ConnectInactive {
		c.State = ConnectSelectingSource
		return
	}
	c.Cancel()
}

// Cancel exits connect mode without creating an edge.
func (c *Connector) Cancel() {
	c.State = ConnectInactive
	c.SourceID = ""
}

// ClickNote advances the state machine for a click on noteID. The first
// note becomes the source; the second completes the edge and exits connect
// mode. Clicking the source again cancels instead.
func (c *Connector) ClickNote(noteID string) (source, target string, done bool) {
	switch c.State {
	case ConnectSelectingSource:
		c.SourceID = noteID
		c.State = ConnectConnecting
		return "", "", false
	case ConnectConnecting:
		if noteID == c.SourceID {
			c.Cancel()
			return "", "", false
		}
		source = c.SourceID
		target = noteID
		c.Cancel()
		return source, target, true
	default:
		return "", "", false
	}
}

// ClickEmpty handles a click on empty canvas: while connecting it cancels
// back to inactive without creating an edge.
func (c *Connector) ClickEmpty() {
	if c.State == ConnectConnecting {
		c.Cancel()
	}
}

// TrackPointer moves the rubber-band endpoint.
func (c *Connector) TrackPointer(cx, cy float64) {
	c.PointerX, c.PointerY = cx, cy
}

// Active reports whether connect mode is on in any state.
func (c *Connector) Active() bool { return c.State != ConnectInactive }

// CurveControl returns the quadratic control point for an edge from
// (x1,y1) to (x2,y2): the midpoint offset perpendicular to the segment by
// an amount that grows with the straight-line distance, capped at
// MaxCurveOffset. The perpendicular is taken from the edge direction, so
// reversing an edge bows its curve toward the other side. Deterministic:
// the same endpoints always produce the same curve.
func CurveControl(x1, y1, x2, y2 float64) (float64, float64) {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return x1, y1
	}
	offset := dist / 4
	if offset > MaxCurveOffset {
		offset = MaxCurveOffset
	}
	midX, midY := (x1+x2)/2, (y1+y2)/2
	// Unit perpendicular of the direction vector.
	px, py := -dy/dist, dx/dist
	return midX + px*offset, midY + py*offset
}

// CurvePoint evaluates the quadratic Bezier through the control point at
// parameter t in [0,1]. The renderer samples this to draw the edge.
func CurvePoint(x1, y1, cx, cy, x2, y2, t float64) (float64, float64) {
	u := 1 - t
	return u*u*x1 + 2*u*t*cx + t*t*x2,
		u*u*y1 + 2*u*t*cy + t*t*y2
}
