package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
	"github.com/hy4ri/ideaboard/internal/tui/state"
	"github.com/hy4ri/ideaboard/internal/tui/styles"
	"github.com/hy4ri/ideaboard/internal/tui/utils"
)

// cell is one canvas character plus its style. The zero value renders
// as a blank.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// grid is the canvas drawing surface. Everything is painted into it in
// back-to-front order, then flushed to a string once per frame.
type grid struct {
	width  int
	height int
	cells  []cell
}

func newGrid(width, height int) *grid {
	return &grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (g *grid) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = cell{r: r, style: style}
}

func (g *grid) text(x, y int, s string, style *lipgloss.Style) {
	col := x
	for _, r := range s {
		g.set(col, y, r, style)
		col += utils.RuneWidth(r)
	}
}

// box paints a rectangle outline with the usual border runes.
func (g *grid) box(x, y, w, h int, style *lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		g.set(col, y, '─', style)
		g.set(col, y+h-1, '─', style)
	}
	for row := y + 1; row < y+h-1; row++ {
		g.set(x, row, '│', style)
		g.set(x+w-1, row, '│', style)
	}
	g.set(x, y, '╭', style)
	g.set(x+w-1, y, '╮', style)
	g.set(x, y+h-1, '╰', style)
	g.set(x+w-1, y+h-1, '╯', style)
}

func (g *grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.r == 0 {
				b.WriteByte(' ')
				continue
			}
			if c.style != nil {
				b.WriteString(c.style.Render(string(c.r)))
			} else {
				b.WriteRune(c.r)
			}
		}
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderCanvas paints the whole canvas area for one frame: connections,
// group frames, notes, the lasso, and the connect-mode rubber band, in
// that z-order.
func renderCanvas(s *state.State, ideas []api.Idea, width, height int) string {
	g := newGrid(width, height)

	visible := make(map[string]bool, len(ideas))
	for _, idea := range ideas {
		visible[idea.ID] = true
	}

	drawConnections(g, s, visible)
	drawGroups(g, s)
	drawNotes(g, s, ideas)
	drawLasso(g, s)
	drawRubberBand(g, s)

	return g.String()
}

// noteCenter returns the live center of a note in canvas units.
func noteCenter(s *state.State, idea *api.Idea) (float64, float64) {
	x, y := s.IdeaPosition(idea)
	w, h := s.IdeaSize(idea)
	return x + w/2, y + h/2
}

// drawConnections samples each edge's quadratic curve and plots it as a
// dotted arc between live note centers.
func drawConnections(g *grid, s *state.State, visible map[string]bool) {
	for _, conn := range s.Connections {
		if !visible[conn.SourceID] || !visible[conn.TargetID] {
			continue
		}
		src := s.IdeaByID(conn.SourceID)
		dst := s.IdeaByID(conn.TargetID)
		if src == nil || dst == nil {
			continue
		}
		x1, y1 := noteCenter(s, src)
		x2, y2 := noteCenter(s, dst)
		drawCurve(g, s, x1, y1, x2, y2, &styles.ConnectionLine)

		// Mark the direction near the target end.
		tx, ty := canvas.CurvePoint(x1, y1, cpX(x1, y1, x2, y2), cpY(x1, y1, x2, y2), x2, y2, 0.9)
		sx, sy := s.Viewport.CanvasToScreen(tx, ty)
		g.set(int(sx), int(sy), '▸', &styles.ConnectionLine)
	}
}

func cpX(x1, y1, x2, y2 float64) float64 {
	cx, _ := canvas.CurveControl(x1, y1, x2, y2)
	return cx
}

func cpY(x1, y1, x2, y2 float64) float64 {
	_, cy := canvas.CurveControl(x1, y1, x2, y2)
	return cy
}

// drawCurve plots a quadratic curve between two canvas points.
func drawCurve(g *grid, s *state.State, x1, y1, x2, y2 float64, style *lipgloss.Style) {
	cx, cy := canvas.CurveControl(x1, y1, x2, y2)
	samples := g.width
	if samples < 32 {
		samples = 32
	}
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		px, py := canvas.CurvePoint(x1, y1, cx, cy, x2, y2, t)
		sx, sy := s.Viewport.CanvasToScreen(px, py)
		g.set(int(sx), int(sy), '·', style)
	}
}

// drawGroups paints each group frame with its header. Collapsed groups
// shrink to the header row.
func drawGroups(g *grid, s *state.State) {
	for i := range s.Groups {
		group := &s.Groups[i]
		rect := s.GroupRect(group)
		left, top := s.Viewport.CanvasToScreen(rect.X, rect.Y)
		w := int(rect.Width * s.Viewport.Zoom)
		h := int(rect.Height * s.Viewport.Zoom)
		x, y := int(left), int(top)

		glyph := "[-]"
		if group.IsCollapsed {
			glyph = "[+]"
			h = 1
		}
		if h > 1 {
			g.box(x, y, w, h, &styles.GroupBorder)
		}
		header := glyph + " " + group.Name
		if count := len(group.IdeaIDs); count > 0 {
			header += " (" + strconv.Itoa(count) + ")"
		}
		header = utils.TruncateString(header, w)
		g.text(x, y, header, &styles.GroupBorder)
		if h > 1 {
			g.set(x+w-1, y+h-1, '◢', &styles.GroupBorder)
		}
	}
}

// drawNotes paints the note cards front to back; later ideas render on
// top by painting last. Notes inside a collapsed group are hidden.
func drawNotes(g *grid, s *state.State, ideas []api.Idea) {
	for i := range ideas {
		idea := s.IdeaByID(ideas[i].ID)
		if idea == nil {
			continue
		}
		if idea.GroupID != nil {
			if grp := s.GroupByID(*idea.GroupID); grp != nil && grp.IsCollapsed {
				continue
			}
		}
		drawNote(g, s, idea)
	}
}

func drawNote(g *grid, s *state.State, idea *api.Idea) {
	x, y := s.IdeaPosition(idea)
	w, h := s.IdeaSize(idea)
	left, top := s.Viewport.CanvasToScreen(x, y)
	sw := int(w * s.Viewport.Zoom)
	sh := int(h * s.Viewport.Zoom)
	sx, sy := int(left), int(top)
	if sw < 4 {
		sw = 4
	}
	if sh < 3 {
		sh = 3
	}

	border := lipgloss.NewStyle().Foreground(styles.NoteColor(idea.Color))
	if s.Selection.IsSelected(idea.ID) {
		border = styles.NoteSelected
	}

	// Blank the interior so notes occlude whatever is behind them.
	for row := sy; row < sy+sh; row++ {
		for col := sx; col < sx+sw; col++ {
			g.set(col, row, ' ', nil)
		}
	}
	g.box(sx, sy, sw, sh, &border)

	inner := sw - 2
	if inner < 1 {
		return
	}
	title := utils.TruncateString(idea.Title, inner)
	g.text(sx+1, sy+1, title, &styles.Title)

	row := sy + 2
	if idea.Description != "" && sh > 3 {
		for _, line := range utils.WrapString(idea.Description, inner) {
			if row >= sy+sh-1 {
				break
			}
			g.text(sx+1, row, line, &styles.Status)
			row++
		}
	}

	if idea.Votes > 0 {
		badge := "▲" + strconv.Itoa(idea.Votes)
		g.text(sx+1, sy+sh-1, badge, &styles.StatusOK)
	}
	if len(idea.TagIDs) > 0 && inner > 4 {
		tags := tagBadge(s, idea.TagIDs, inner-3)
		g.text(sx+sw-1-lipgloss.Width(tags), sy+sh-1, tags, &styles.Status)
	}
}

func tagBadge(s *state.State, tagIDs []string, max int) string {
	names := make([]string, 0, len(tagIDs))
	for _, id := range tagIDs {
		if tag := s.TagByID(id); tag != nil {
			names = append(names, tag.Name)
		}
	}
	return utils.TruncateString("#"+strings.Join(names, " #"), max)
}

// drawLasso paints the in-progress selection rectangle in screen space.
func drawLasso(g *grid, s *state.State) {
	if !s.Selection.LassoActive() {
		return
	}
	rect := s.Selection.LassoRect()
	x, y := int(rect.X), int(rect.Y)
	w, h := int(rect.Width), int(rect.Height)
	if w < 1 || h < 1 {
		return
	}
	for col := x; col <= x+w; col++ {
		g.set(col, y, '┄', &styles.LassoStyle)
		g.set(col, y+h, '┄', &styles.LassoStyle)
	}
	for row := y; row <= y+h; row++ {
		g.set(x, row, '┆', &styles.LassoStyle)
		g.set(x+w, row, '┆', &styles.LassoStyle)
	}
}

// drawRubberBand paints the connect-mode preview from the source note
// to the pointer.
func drawRubberBand(g *grid, s *state.State) {
	if s.Connector.State != canvas.ConnectConnecting {
		return
	}
	src := s.IdeaByID(s.Connector.SourceID)
	if src == nil {
		return
	}
	x1, y1 := noteCenter(s, src)
	drawCurve(g, s, x1, y1, s.Connector.PointerX, s.Connector.PointerY, &styles.LassoStyle)
}
