package canvas

import "testing"

func TestDragScaledByZoom(t *testing.T) {
	// Note at canvas (100,100); drag by screen delta (50,0) at zoom 2.0.
	// The committed canvas delta must be (25,0).
	g := &NoteGesture{}
	g.BeginDrag("n1", 100, 100, 400, 300)
	g.Track(450, 300)

	x, y, moved := g.EndDrag(2.0)
	if !moved {
		t.Fatal("expected moved=true")
	}
	if x != 125 || y != 100 {
		t.Errorf("final position = (%v,%v), want (125,100)", x, y)
	}
	if g.State != NoteIdle {
		t.Errorf("state after EndDrag = %v, want idle", g.State)
	}
}

func TestDragCommitSuppression(t *testing.T) {
	// A pure click (no pointer movement) is not a drag.
	g := &NoteGesture{}
	g.BeginDrag("n1", 40, 40, 10, 10)

	x, y, moved := g.EndDrag(1.0)
	if moved {
		t.Errorf("unmoved drag reported moved=true (pos %v,%v)", x, y)
	}
}

func TestDragLivePosition(t *testing.T) {
	g := &NoteGesture{}
	g.BeginDrag("n1", 0, 0, 100, 100)
	g.Track(110, 130)

	x, y := g.DragPosition(1.0)
	if x != 10 || y != 30 {
		t.Errorf("live position = (%v,%v), want (10,30)", x, y)
	}

	// Same pointer delta at half zoom moves twice as far in canvas units.
	x, y = g.DragPosition(0.5)
	if x != 20 || y != 60 {
		t.Errorf("live position at zoom 0.5 = (%v,%v), want (20,60)", x, y)
	}
}

func TestResizeClampsEachAxis(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     float64
		wantW      float64
		wantH      float64
		wantChange bool
	}{
		{"grow both", 10, 5, 30, 11, true},
		{"shrink below min width only", -19, 0, MinNoteWidth, 6, true},
		{"shrink below min height only", 0, -5, 20, MinNoteHeight, true},
		{"shrink below both", -100, -100, MinNoteWidth, MinNoteHeight, true},
		{"no movement", 0, 0, 20, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &NoteGesture{}
			g.BeginResize("n1", 20, 6, 0, 0)
			g.Track(tt.dx, tt.dy)

			w, h, changed := g.EndResize(1.0)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = (%v,%v), want (%v,%v)", w, h, tt.wantW, tt.wantH)
			}
			if changed != tt.wantChange {
				t.Errorf("changed = %v, want %v", changed, tt.wantChange)
			}
		})
	}
}

func TestEditCommit(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantTitle   string
		wantDesc    string
		wantChanged bool
	}{
		{"changed title", "New title", "details", "New title", "details", true},
		{"changed description", "Original", "more details", "Original", "more details", true},
		{"trimmed equals baseline", "  Original  ", "details", "Original", "details", false},
		{"empty title discards edit", "   ", "anything", "Original", "details", false},
		{"unchanged pair", "Original", "details", "Original", "details", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &NoteGesture{}
			g.BeginEdit("n1", "Original", "details")

			title, desc, changed := g.CommitEdit(tt.title, tt.description)
			if title != tt.wantTitle || desc != tt.wantDesc {
				t.Errorf("commit = (%q,%q), want (%q,%q)", title, desc, tt.wantTitle, tt.wantDesc)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if g.State != NoteIdle {
				t.Errorf("state after CommitEdit = %v, want idle", g.State)
			}
		})
	}
}

func TestEditCancelReverts(t *testing.T) {
	g := &NoteGesture{}
	g.BeginEdit("n1", "Keep me", "and me")

	title, desc := g.CancelEdit()
	if title != "Keep me" || desc != "and me" {
		t.Errorf("CancelEdit = (%q,%q), want baseline", title, desc)
	}
	if g.Active() {
		t.Error("gesture still active after CancelEdit")
	}
}
