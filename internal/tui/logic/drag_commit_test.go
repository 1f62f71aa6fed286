package logic

import (
	"testing"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
)

func TestEndNoteDragUnmovedCommitsNothing(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{{ID: "n1", X: 100, Y: 100, Width: 20, Height: 6}}

	h.NoteGesture.BeginDrag("n1", 100, 100, 40, 12)
	// Release at the press point: no motion at all.
	if cmd := h.endNoteDrag(); cmd != nil {
		t.Error("in-place release produced a sync command")
	}
	if h.History.CanUndo() {
		t.Error("in-place release recorded a history entry")
	}
	if h.NoteGesture.Active() {
		t.Error("gesture still active after release")
	}
}

func TestEndNoteDragMovedCommitsOnce(t *testing.T) {
	h := testHandler()
	h.Viewport.SetZoom(2.0)
	h.Ideas = []api.Idea{{ID: "n1", X: 100, Y: 100, Width: 20, Height: 6}}

	h.NoteGesture.BeginDrag("n1", 100, 100, 0, 0)
	h.NoteGesture.Track(50, 0)
	cmd := h.endNoteDrag()

	if cmd == nil {
		t.Fatal("moved release produced no sync command")
	}
	idea := h.IdeaByID("n1")
	if idea.X != 125 || idea.Y != 100 {
		t.Errorf("committed position = (%v, %v), want (125, 100)", idea.X, idea.Y)
	}
	if h.History.Len() != 1 {
		t.Fatalf("history length = %d, want 1", h.History.Len())
	}

	entry := h.History.Undo()
	if entry.Kind != canvas.KindPosition {
		t.Errorf("entry kind = %v, want position", entry.Kind)
	}
	if entry.Before.X != 100 || entry.After.X != 125 {
		t.Errorf("entry snapshots = %v -> %v, want 100 -> 125", entry.Before.X, entry.After.X)
	}
}

func TestEndNoteResizeUnchangedCommitsNothing(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{{ID: "n1", X: 0, Y: 0, Width: 20, Height: 6}}

	h.NoteGesture.BeginResize("n1", 20, 6, 40, 6)
	if cmd := h.endNoteResize(); cmd != nil {
		t.Error("unchanged resize produced a sync command")
	}
	if h.History.CanUndo() {
		t.Error("unchanged resize recorded a history entry")
	}
}

func TestUndoRestoresCommittedPosition(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{{ID: "n1", X: 10, Y: 10, Width: 20, Height: 6}}

	h.NoteGesture.BeginDrag("n1", 10, 10, 0, 0)
	h.NoteGesture.Track(30, 0)
	h.endNoteDrag()

	if cmd := h.undo(); cmd == nil {
		t.Fatal("undo produced no sync command")
	}
	idea := h.IdeaByID("n1")
	if idea.X != 10 {
		t.Errorf("undone X = %v, want 10", idea.X)
	}

	if cmd := h.redo(); cmd == nil {
		t.Fatal("redo produced no sync command")
	}
	if idea.X != 40 {
		t.Errorf("redone X = %v, want 40", idea.X)
	}
}

func TestUndoSkipsDeletedNote(t *testing.T) {
	h := testHandler()
	h.Ideas = []api.Idea{{ID: "n1", X: 10, Y: 10, Width: 20, Height: 6}}

	h.NoteGesture.BeginDrag("n1", 10, 10, 0, 0)
	h.NoteGesture.Track(30, 0)
	h.endNoteDrag()

	h.Ideas = nil
	if cmd := h.undo(); cmd != nil {
		t.Error("undo against a deleted note produced a sync command")
	}
	if h.History.CanUndo() {
		t.Error("entry not consumed when its note is gone")
	}
	if !h.History.CanRedo() {
		t.Error("consumed entry not available for redo")
	}
}

func TestGroupDragFansOutToMembers(t *testing.T) {
	h := testHandler()
	gid := "g1"
	h.Groups = []api.Group{{ID: gid, X: 0, Y: 0, Width: 50, Height: 20}}
	h.Ideas = []api.Idea{
		{ID: "m1", X: 5, Y: 5, Width: 10, Height: 4, GroupID: &gid},
		{ID: "m2", X: 20, Y: 8, Width: 10, Height: 4, GroupID: &gid},
		{ID: "solo", X: 80, Y: 80, Width: 10, Height: 4},
	}

	h.GroupGesture.BeginDrag(gid, 0, 0, 0, 0)
	dx, dy := h.GroupGesture.Track(10, 6, h.Viewport.Zoom)
	h.applyGroupDelta(gid, dx, dy)
	dx, dy = h.GroupGesture.Track(14, 6, h.Viewport.Zoom)
	h.applyGroupDelta(gid, dx, dy)

	cmd := h.endGroupDrag()
	if cmd == nil {
		t.Fatal("group drag produced no sync command")
	}

	group := h.GroupByID(gid)
	if group.X != 14 || group.Y != 6 {
		t.Errorf("group origin = (%v, %v), want (14, 6)", group.X, group.Y)
	}
	m1 := h.IdeaByID("m1")
	if m1.X != 19 || m1.Y != 11 {
		t.Errorf("member m1 = (%v, %v), want (19, 11)", m1.X, m1.Y)
	}
	m2 := h.IdeaByID("m2")
	if m2.X != 34 || m2.Y != 14 {
		t.Errorf("member m2 = (%v, %v), want (34, 14)", m2.X, m2.Y)
	}
	solo := h.IdeaByID("solo")
	if solo.X != 80 {
		t.Errorf("non-member moved to X=%v", solo.X)
	}
	if h.History.CanUndo() {
		t.Error("group move recorded a history entry")
	}
}

func TestGroupDragUnmovedCommitsNothing(t *testing.T) {
	h := testHandler()
	gid := "g1"
	h.Groups = []api.Group{{ID: gid, X: 0, Y: 0, Width: 50, Height: 20}}

	h.GroupGesture.BeginDrag(gid, 0, 0, 12, 9)
	if cmd := h.endGroupDrag(); cmd != nil {
		t.Error("in-place group release produced a sync command")
	}
}
