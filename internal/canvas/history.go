package canvas

// DefaultHistoryLimit caps the undo stack; oldest entries are evicted first.
const DefaultHistoryLimit = 50

// EntryKind discriminates which note attribute a history entry captures.
type EntryKind int

const (
	KindPosition EntryKind = iota
	KindSize
	KindContent
	KindTags
)

// String returns the attribute name, matching the PATCH sub-resource it
// replays against.
func (k EntryKind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindSize:
		return "size"
	case KindContent:
		return "content"
	case KindTags:
		return "tags"
	default:
		return "unknown"
	}
}

// Snapshot holds one attribute's value; only the fields selected by the
// entry's Kind are meaningful.
type Snapshot struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Description   string
	TagIDs        []string
}

// Entry is a single undoable attribute-level change to one note, carrying
// before and after snapshots of just that attribute.
type Entry struct {
	Kind   EntryKind
	NoteID string
	Before Snapshot
	After  Snapshot
}

// History is a bounded undo/redo log. It only manages the stacks; applying
// an entry (Before on undo, After on redo) is the caller's responsibility.
type History struct {
	past   []Entry
	future []Entry
	limit  int
}

// NewHistory returns a log that keeps at most limit entries. A limit of
// zero or less falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push appends an entry to the past stack, evicting the oldest entry when
// over capacity, and clears the future stack: there is no redo after a
// fresh edit.
func (h *History) Push(e Entry) {
	h.past = append(h.past, e)
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = nil
}

// Undo pops the most recent past entry onto the future stack and returns
// it. Returns nil when there is nothing to undo; that is a no-op, not an
// error.
func (h *History) Undo() *Entry {
	if len(h.past) == 0 {
		return nil
	}
	e := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, e)
	return &e
}

// Redo is the mirror of Undo.
func (h *History) Redo() *Entry {
	if len(h.future) == 0 {
		return nil
	}
	e := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, e)
	return &e
}

// Clear empties both stacks. Used when switching boards.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// CanUndo reports whether the past stack is non-empty.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.past) }
