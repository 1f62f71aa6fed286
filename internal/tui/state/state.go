// Package state holds the application state shared by the logic and ui
// packages. The State owns the authoritative collections for the current
// board; the canvas gestures and all other components only see read-only
// views plus the handler's mutation paths.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/canvas"
	"github.com/hy4ri/ideaboard/internal/config"
	"github.com/hy4ri/ideaboard/internal/tui/styles"
)

// HeaderRows is the number of terminal rows above the canvas area; mouse
// coordinates are translated by this before entering the viewport
// transform.
const HeaderRows = 2

// FooterRows is the number of rows below the canvas (palette + status).
const FooterRows = 2

// Overlay identifies which modal surface, if any, sits over the canvas.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayNoteEdit
	OverlayNameForm
	OverlayTagFilter
	OverlayBoards
	OverlayConfirm
	OverlayHelp
	OverlayAI
)

// NameFormKind selects what the shared name form creates.
type NameFormKind int

const (
	NameFormBoard NameFormKind = iota
	NameFormGroup
	NameFormTag
)

// ConfirmKind selects what a pending delete confirmation targets. Notes
// are deleted without confirmation; groups, tags and boards require it.
type ConfirmKind int

const (
	ConfirmGroup ConfirmKind = iota
	ConfirmTag
	ConfirmBoard
)

// Confirm is a pending delete confirmation.
type Confirm struct {
	Kind ConfirmKind
	ID   string
	Name string
}

// State holds the application state. All fields are exported to allow
// access from the logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config

	// Data for the current board
	Boards      []api.Board
	Board       *api.Board
	Ideas       []api.Idea
	Tags        []api.Tag
	Connections []api.Connection
	Groups      []api.Group

	// Canvas engine
	Viewport     *canvas.Viewport
	History      *canvas.History
	Selection    *canvas.Selection
	NoteGesture  canvas.NoteGesture
	GroupGesture canvas.GroupGesture
	Connector    canvas.Connector

	// Pan state. PanMode is the space toggle; Panning is an active
	// middle- or pan-mode drag, tracked incrementally.
	PanMode  bool
	Panning  bool
	LastPanX float64
	LastPanY float64

	// ArmedColor is a palette swatch picked up for drop-to-create; empty
	// when nothing is armed.
	ArmedColor api.Color

	// Filters. They all AND together; zero values are no-ops.
	FilterColor api.Color
	FilterTags  map[string]bool
	SearchQuery string
	SearchInput textinput.Model
	Searching   bool

	// Overlay state
	Overlay       Overlay
	NameForm      NameFormKind
	NameInput     textinput.Model
	TitleInput    textinput.Model
	DescInput     textinput.Model
	DescFocused   bool
	EditingNoteID string
	Confirm       Confirm
	BoardCursor   int
	TagCursor     int
	HelpView      viewport.Model

	// Presentation mode
	Presenting   bool
	PresentIndex int

	// Session timer
	TimerRunning   bool
	TimerRemaining time.Duration

	// AI panel
	AIBusy  bool
	AITitle string
	AIText  string

	// UI state
	Loading   bool
	Spinner   spinner.Model
	StatusMsg string
	Notice    string
	NoticeSeq int
	Width     int
	Height    int

	// Double-click detection
	LastClickID string
	LastClickAt time.Time
}

// New creates the application state from loaded configuration.
func New(client *api.Client, cfg *config.Config) *State {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	vp := canvas.NewViewport()
	vp.MinZoom = cfg.UI.MinZoom
	vp.MaxZoom = cfg.UI.MaxZoom
	vp.Step = cfg.UI.ZoomStep

	searchInput := textinput.New()
	searchInput.Placeholder = "Search ideas..."
	searchInput.CharLimit = 100
	searchInput.Width = 30

	nameInput := textinput.New()
	nameInput.CharLimit = 60
	nameInput.Width = 30

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 120
	titleInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.CharLimit = 500
	descInput.Width = 40

	return &State{
		Client:      client,
		Config:      cfg,
		Viewport:    vp,
		History:     canvas.NewHistory(cfg.UI.HistoryLimit),
		Selection:   canvas.NewSelection(),
		FilterTags:  make(map[string]bool),
		SearchInput: searchInput,
		NameInput:   nameInput,
		TitleInput:  titleInput,
		DescInput:   descInput,
		Spinner:     s,
		Loading:     true,
	}
}

// IdeaByID returns a pointer into the Ideas slice, or nil.
func (s *State) IdeaByID(id string) *api.Idea {
	for i := range s.Ideas {
		if s.Ideas[i].ID == id {
			return &s.Ideas[i]
		}
	}
	return nil
}

// GroupByID returns a pointer into the Groups slice, or nil.
func (s *State) GroupByID(id string) *api.Group {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// TagByID returns a pointer into the Tags slice, or nil.
func (s *State) TagByID(id string) *api.Tag {
	for i := range s.Tags {
		if s.Tags[i].ID == id {
			return &s.Tags[i]
		}
	}
	return nil
}

// IdeaPosition is the live-position side channel: while a note is being
// dragged its position comes from the gesture, not the committed state,
// so connection endpoints and the renderer stay attached frame by frame.
func (s *State) IdeaPosition(idea *api.Idea) (float64, float64) {
	if s.NoteGesture.State == canvas.NoteDragging && s.NoteGesture.NoteID == idea.ID {
		return s.NoteGesture.DragPosition(s.Viewport.Zoom)
	}
	return idea.X, idea.Y
}

// IdeaSize is the live-size counterpart for an active resize.
func (s *State) IdeaSize(idea *api.Idea) (float64, float64) {
	if s.NoteGesture.State == canvas.NoteResizing && s.NoteGesture.NoteID == idea.ID {
		return s.NoteGesture.ResizeSize(s.Viewport.Zoom)
	}
	return idea.Width, idea.Height
}

// GroupRect returns the group's live bounding box.
func (s *State) GroupRect(g *api.Group) canvas.Rect {
	if s.GroupGesture.GroupID == g.ID {
		switch s.GroupGesture.State {
		case canvas.GroupDragging:
			x, y := s.GroupGesture.Position()
			return canvas.Rect{X: x, Y: y, Width: g.Width, Height: g.Height}
		case canvas.GroupResizing:
			w, h := s.GroupGesture.ResizeSize(s.Viewport.Zoom)
			return canvas.Rect{X: g.X, Y: g.Y, Width: w, Height: h}
		}
	}
	return canvas.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

// InputFocused reports whether a text input currently owns the keyboard;
// global shortcuts are suppressed while it does.
func (s *State) InputFocused() bool {
	if s.Searching {
		return true
	}
	switch s.Overlay {
	case OverlayNoteEdit, OverlayNameForm:
		return true
	}
	return false
}

// ResetBoardState clears everything scoped to one board session: the
// history, the selection, and any in-flight gesture or overlay.
func (s *State) ResetBoardState() {
	s.History.Clear()
	s.Selection.Clear()
	s.NoteGesture = canvas.NoteGesture{}
	s.GroupGesture = canvas.GroupGesture{}
	s.Connector.Cancel()
	s.Overlay = OverlayNone
	s.Presenting = false
	s.ArmedColor = ""
	s.Viewport.ResetZoom()
}
