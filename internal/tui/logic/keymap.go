package logic

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	NewNote     Key
	ConnectMode Key
	GroupSel    Key
	Present     Key
	Timer       Key
	DeleteNote  Key
	Cancel      Key

	Undo     Key
	Redo     Key
	RedoAlt  Key
	ZoomIn   Key
	ZoomOut  Key
	ZoomRset Key
	PanMode  Key

	Vote       Key
	Copy       Key
	Search     Key
	ColorFilt  Key
	TagPanel   Key
	Boards     Key
	Summary    Key
	Suggest    Key
	Categorize Key
	Refresh    Key

	Help Key
	Quit Key
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		NewNote:     Key{Key: "n", Help: "new note"},
		ConnectMode: Key{Key: "c", Help: "toggle connect mode"},
		GroupSel:    Key{Key: "g", Help: "group selection"},
		Present:     Key{Key: "p", Help: "presentation mode"},
		Timer:       Key{Key: "t", Help: "toggle timer"},
		DeleteNote:  Key{Key: "delete", Help: "delete selected note"},
		Cancel:      Key{Key: "esc", Help: "cancel / clear"},

		Undo:     Key{Key: "ctrl+z", Help: "undo"},
		Redo:     Key{Key: "ctrl+shift+z", Help: "redo"},
		RedoAlt:  Key{Key: "ctrl+y", Help: "redo"},
		ZoomIn:   Key{Key: "ctrl++", Help: "zoom in"},
		ZoomOut:  Key{Key: "ctrl+-", Help: "zoom out"},
		ZoomRset: Key{Key: "ctrl+0", Help: "reset zoom"},
		PanMode:  Key{Key: " ", Help: "toggle pan mode"},

		Vote:       Key{Key: "v", Help: "vote for selected"},
		Copy:       Key{Key: "y", Help: "copy note to clipboard"},
		Search:     Key{Key: "/", Help: "search"},
		ColorFilt:  Key{Key: "f", Help: "cycle color filter"},
		TagPanel:   Key{Key: "F", Help: "tags panel"},
		Boards:     Key{Key: "b", Help: "boards"},
		Summary:    Key{Key: "i", Help: "AI summary"},
		Suggest:    Key{Key: "I", Help: "AI suggestions"},
		Categorize: Key{Key: "ctrl+t", Help: "AI categorize"},
		Refresh:    Key{Key: "r", Help: "refresh from server"},

		Help: Key{Key: "?", Help: "help"},
		Quit: Key{Key: "q", Help: "quit"},
	}
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Canvas", ""},
		{k.NewNote.Key, "New note at the center of the view"},
		{"drag swatch", "Drop a colored note onto the canvas"},
		{"click / drag", "Select / move a note"},
		{"ctrl+click", "Add to selection"},
		{"drag empty canvas", "Lasso select"},
		{"double-click", "Edit note inline"},
		{"drag corner", "Resize note"},
		{k.DeleteNote.Key, "Delete selected note(s)"},
		{k.Vote.Key, "Vote for selected note"},
		{k.Copy.Key, "Copy note text to clipboard"},
		{"", ""},
		{"View", ""},
		{k.ZoomIn.Key + "/" + k.ZoomOut.Key, "Zoom in/out"},
		{"ctrl+scroll", "Continuous zoom"},
		{k.ZoomRset.Key, "Reset zoom and pan"},
		{"space", "Toggle pan mode (drag or h/j/k/l pans)"},
		{"middle-drag", "Pan"},
		{"", ""},
		{"Structure", ""},
		{k.ConnectMode.Key, "Connect mode: click source, then target (again to remove)"},
		{k.GroupSel.Key, "Group the selected notes"},
		{k.TagPanel.Key, "Tags: filter, or tag the selection"},
		{k.ColorFilt.Key, "Cycle the color filter"},
		{k.Search.Key, "Search title/description/tags"},
		{"", ""},
		{"Session", ""},
		{k.Boards.Key, "Switch / manage boards"},
		{k.Present.Key, "Presentation mode"},
		{k.Timer.Key, "Session timer"},
		{k.Summary.Key + "/" + k.Suggest.Key, "AI summary / suggestions"},
		{k.Categorize.Key, "AI tag categorization"},
		{k.Undo.Key + "/" + k.RedoAlt.Key, "Undo / redo"},
		{k.Refresh.Key, "Refetch everything from the server"},
		{k.Cancel.Key, "Cancel connect mode, else clear selection"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
