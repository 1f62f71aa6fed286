package logic

import (
	"testing"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/config"
	"github.com/hy4ri/ideaboard/internal/tui/state"
)

func testHandler() *Handler {
	cfg := config.DefaultConfig()
	s := state.New(api.NewClient(""), cfg)
	s.Board = &api.Board{ID: "board-1", Name: "test"}
	return NewHandler(s)
}

func TestResolveLassoSelectsIntersectingNotes(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{
		{ID: "inside", X: 20, Y: 20, Width: 10, Height: 5},
		{ID: "overlap", X: 95, Y: 95, Width: 20, Height: 10},
		{ID: "outside", X: 300, Y: 300, Width: 10, Height: 5},
	}

	h.Selection.StartLasso(10, 10)
	h.Selection.UpdateLasso(100, 100)
	h.resolveLasso()

	if h.Selection.LassoActive() {
		t.Fatal("lasso still active after resolution")
	}
	if !h.Selection.IsSelected("inside") {
		t.Error("fully contained note not selected")
	}
	if !h.Selection.IsSelected("overlap") {
		t.Error("partially intersecting note not selected")
	}
	if h.Selection.IsSelected("outside") {
		t.Error("note outside lasso selected")
	}
}

func TestResolveLassoAccountsForZoom(t *testing.T) {
	// At zoom 2 the screen rect (10,10)-(100,100) covers canvas
	// (5,5)-(50,50); a note at canvas (60,60) is outside even though its
	// coordinates fall inside the raw screen rect.
	h := testHandler()
	h.Viewport.SetZoom(2.0)
	h.Ideas = []api.Idea{
		{ID: "near", X: 10, Y: 10, Width: 5, Height: 3},
		{ID: "far", X: 60, Y: 60, Width: 5, Height: 3},
	}

	h.Selection.StartLasso(10, 10)
	h.Selection.UpdateLasso(100, 100)
	h.resolveLasso()

	if !h.Selection.IsSelected("near") {
		t.Error("note inside zoomed lasso not selected")
	}
	if h.Selection.IsSelected("far") {
		t.Error("note outside zoomed lasso selected")
	}
}

func TestResolveLassoReplacesSelection(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{
		{ID: "old", X: 500, Y: 500, Width: 10, Height: 5},
		{ID: "new", X: 20, Y: 20, Width: 10, Height: 5},
	}
	h.Selection.ToggleSelect("old", false)

	h.Selection.StartLasso(10, 10)
	h.Selection.UpdateLasso(100, 100)
	h.resolveLasso()

	if h.Selection.IsSelected("old") {
		t.Error("previous selection survived lasso")
	}
	if !h.Selection.IsSelected("new") {
		t.Error("lassoed note not selected")
	}
}

func TestResolveLassoSkipsFilteredNotes(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{
		{ID: "shown", X: 20, Y: 20, Width: 10, Height: 5, Color: api.ColorBlue},
		{ID: "hidden", X: 30, Y: 30, Width: 10, Height: 5, Color: api.ColorPink},
	}
	h.FilterColor = api.ColorBlue

	h.Selection.StartLasso(10, 10)
	h.Selection.UpdateLasso(100, 100)
	h.resolveLasso()

	if !h.Selection.IsSelected("shown") {
		t.Error("visible note not selected")
	}
	if h.Selection.IsSelected("hidden") {
		t.Error("filtered-out note selected by lasso")
	}
}
