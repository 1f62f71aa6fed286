package state

import (
	"testing"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
	"github.com/hy4ri/ideaboard/internal/config"
)

func newTestState() *State {
	return New(api.NewClient(""), config.DefaultConfig())
}

func TestIdeaPositionFollowsActiveDrag(t *testing.T) {
	s := newTestState()
	s.Ideas = []api.Idea{{ID: "n1", X: 100, Y: 50, Width: 20, Height: 6}}
	idea := s.IdeaByID("n1")

	// Committed position before any gesture.
	if x, y := s.IdeaPosition(idea); x != 100 || y != 50 {
		t.Fatalf("idle position = (%v, %v), want (100, 50)", x, y)
	}

	s.NoteGesture.BeginDrag("n1", 100, 50, 0, 0)
	s.NoteGesture.Track(30, 10)
	if x, y := s.IdeaPosition(idea); x != 130 || y != 60 {
		t.Errorf("live position = (%v, %v), want (130, 60)", x, y)
	}

	// Another note is unaffected by the gesture.
	s.Ideas = append(s.Ideas, api.Idea{ID: "n2", X: 7, Y: 8})
	other := s.IdeaByID("n2")
	if x, y := s.IdeaPosition(other); x != 7 || y != 8 {
		t.Errorf("bystander position = (%v, %v), want (7, 8)", x, y)
	}

	s.NoteGesture.EndDrag(s.Viewport.Zoom)
	idea = s.IdeaByID("n1")
	if x, _ := s.IdeaPosition(idea); x != 100 {
		t.Errorf("position after release = %v, want committed 100", x)
	}
}

func TestIdeaSizeFollowsActiveResize(t *testing.T) {
	s := newTestState()
	s.Ideas = []api.Idea{{ID: "n1", Width: 20, Height: 6}}
	idea := s.IdeaByID("n1")

	s.NoteGesture.BeginResize("n1", 20, 6, 0, 0)
	s.NoteGesture.Track(10, 4)
	if w, h := s.IdeaSize(idea); w != 30 || h != 10 {
		t.Errorf("live size = (%v, %v), want (30, 10)", w, h)
	}
}

func TestGroupRectFollowsGesture(t *testing.T) {
	s := newTestState()
	g := &api.Group{ID: "g1", X: 10, Y: 10, Width: 40, Height: 15}

	s.GroupGesture.BeginDrag("g1", 10, 10, 0, 0)
	s.GroupGesture.Track(5, 3, s.Viewport.Zoom)
	rect := s.GroupRect(g)
	if rect.X != 15 || rect.Y != 13 {
		t.Errorf("live group origin = (%v, %v), want (15, 13)", rect.X, rect.Y)
	}
	if rect.Width != 40 {
		t.Errorf("drag changed width to %v", rect.Width)
	}
}

func TestInputFocused(t *testing.T) {
	s := newTestState()
	if s.InputFocused() {
		t.Error("fresh state reports focus")
	}
	s.Searching = true
	if !s.InputFocused() {
		t.Error("search focus not reported")
	}
	s.Searching = false
	s.Overlay = OverlayNoteEdit
	if !s.InputFocused() {
		t.Error("note editor focus not reported")
	}
	s.Overlay = OverlayHelp
	if s.InputFocused() {
		t.Error("help overlay reported as input focus")
	}
}

func TestResetBoardState(t *testing.T) {
	s := newTestState()
	s.History.Push(canvas.Entry{Kind: canvas.KindPosition, NoteID: "n1"})
	s.Selection.ToggleSelect("n1", false)
	s.NoteGesture.BeginDrag("n1", 0, 0, 0, 0)
	s.Connector.Toggle()
	s.Overlay = OverlayBoards
	s.Viewport.SetZoom(2.0)
	s.Viewport.Pan(13, 7)

	s.ResetBoardState()

	if s.History.CanUndo() {
		t.Error("history survived board switch")
	}
	if s.Selection.Count() != 0 {
		t.Error("selection survived board switch")
	}
	if s.NoteGesture.Active() {
		t.Error("gesture survived board switch")
	}
	if s.Connector.Active() {
		t.Error("connect mode survived board switch")
	}
	if s.Overlay != OverlayNone {
		t.Error("overlay survived board switch")
	}
	if s.Viewport.Zoom != 1.0 || s.Viewport.PanX != 0 {
		t.Error("viewport not reset on board switch")
	}
}
