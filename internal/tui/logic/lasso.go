package logic

import "github.com/hy4ri/ideaboard/internal/canvas"

// resolveLasso converts the finished lasso rectangle from screen space to
// canvas space and replaces the selection with every visible idea whose
// box intersects it. The conversion happens here, at resolution time, so
// the same screen gesture selects the same notes at any zoom.
func (h *Handler) resolveLasso() {
	rect := h.Selection.LassoRect()
	h.Selection.EndLasso()

	x1, y1 := h.Viewport.ScreenToCanvas(rect.X, rect.Y)
	x2, y2 := h.Viewport.ScreenToCanvas(rect.X+rect.Width, rect.Y+rect.Height)
	lasso := canvas.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}

	var hit []string
	for _, idea := range h.visibleIdeas() {
		box := canvas.Rect{X: idea.X, Y: idea.Y, Width: idea.Width, Height: idea.Height}
		if lasso.Intersects(box) {
			hit = append(hit, idea.ID)
		}
	}
	h.Selection.SelectIDsInLasso(hit)
}
