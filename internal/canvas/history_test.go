package canvas

import "testing"

func posEntry(noteID string, fromX, fromY, toX, toY float64) Entry {
	return Entry{
		Kind:   KindPosition,
		NoteID: noteID,
		Before: Snapshot{X: fromX, Y: fromY},
		After:  Snapshot{X: toX, Y: toY},
	}
}

func TestUndoReturnsMostRecent(t *testing.T) {
	h := NewHistory(0)

	e1 := posEntry("1", 0, 0, 10, 10)
	e2 := Entry{Kind: KindSize, NoteID: "2", Before: Snapshot{Width: 8, Height: 3}, After: Snapshot{Width: 16, Height: 6}}
	h.Push(e1)
	h.Push(e2)

	got := h.Undo()
	if got == nil || got.NoteID != "2" || got.Kind != KindSize {
		t.Fatalf("Undo() = %+v, want entry e2", got)
	}

	redone := h.Redo()
	if redone == nil || redone.NoteID != "2" || redone.Kind != KindSize {
		t.Fatalf("Redo() = %+v, want entry e2 again", redone)
	}
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	h := NewHistory(0)
	if e := h.Undo(); e != nil {
		t.Errorf("Undo on empty log = %+v, want nil", e)
	}
	if e := h.Redo(); e != nil {
		t.Errorf("Redo on empty log = %+v, want nil", e)
	}
}

func TestPushClearsFuture(t *testing.T) {
	h := NewHistory(0)
	h.Push(posEntry("1", 0, 0, 5, 5))
	h.Push(posEntry("1", 5, 5, 9, 9))

	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	// A fresh edit forfeits the redo branch.
	h.Push(posEntry("1", 5, 5, 20, 20))
	if h.CanRedo() {
		t.Error("push after undo must clear the future stack")
	}
	if e := h.Redo(); e != nil {
		t.Errorf("Redo after push = %+v, want nil", e)
	}
}

func TestFIFOEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(posEntry("1", float64(i), 0, float64(i+1), 0))
	}

	if h.Len() != 3 {
		t.Fatalf("past length = %d, want 3", h.Len())
	}

	// The survivors must be the newest three, in LIFO undo order.
	for _, wantX := range []float64{5, 4, 3} {
		e := h.Undo()
		if e == nil || e.After.X != wantX {
			t.Errorf("Undo() after = %+v, want After.X=%v", e, wantX)
		}
	}
	if h.CanUndo() {
		t.Error("expected no entries left after undoing survivors")
	}
}

// Scenario from the board contract: push A (note 1, position) then B
// (note 2, size); two undos return B then A; one redo returns A.
func TestUndoRedoOrderingScenario(t *testing.T) {
	h := NewHistory(0)
	a := posEntry("1", 100, 100, 150, 100)
	b := Entry{Kind: KindSize, NoteID: "2", Before: Snapshot{Width: 10, Height: 4}, After: Snapshot{Width: 20, Height: 8}}
	h.Push(a)
	h.Push(b)

	first := h.Undo()
	second := h.Undo()
	if first == nil || first.NoteID != "2" {
		t.Fatalf("first undo = %+v, want B", first)
	}
	if second == nil || second.NoteID != "1" {
		t.Fatalf("second undo = %+v, want A", second)
	}

	redone := h.Redo()
	if redone == nil || redone.NoteID != "1" || redone.Kind != KindPosition {
		t.Fatalf("redo = %+v, want A", redone)
	}
	if redone.After.X != 150 {
		t.Errorf("redo reapplies After: got X=%v, want 150", redone.After.X)
	}
}

func TestClear(t *testing.T) {
	h := NewHistory(0)
	h.Push(posEntry("1", 0, 0, 1, 1))
	h.Push(posEntry("1", 1, 1, 2, 2))
	h.Undo()

	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear must empty both stacks")
	}
}

func TestEntryKindString(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{KindPosition, "position"},
		{KindSize, "size"},
		{KindContent, "content"},
		{KindTags, "tags"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EntryKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
