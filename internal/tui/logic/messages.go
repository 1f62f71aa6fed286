package logic

import "github.com/hy4ri/ideaboard/internal/api"

// Message types for async completions. One type per completion, in the
// Bubble Tea style: commands run off the update loop and report back here.

type errMsg struct{ err error }

// noticeMsg is a transient, auto-dismissed user-facing notice.
type noticeMsg struct{ text string }

// noticeExpiredMsg clears the notice identified by seq; a newer notice
// keeps the screen.
type noticeExpiredMsg struct{ seq int }

// dataLoadedMsg delivers the initial fetch: all boards plus the first
// board's content.
type dataLoadedMsg struct {
	boards      []api.Board
	board       *api.Board
	ideas       []api.Idea
	tags        []api.Tag
	connections []api.Connection
	groups      []api.Group
}

// boardLoadFailedMsg reports a failed board switch; the current board
// stays on screen.
type boardLoadFailedMsg struct {
	name string
	err  error
}

// boardDataMsg delivers one board's content after a switch.
type boardDataMsg struct {
	board       api.Board
	ideas       []api.Idea
	connections []api.Connection
	groups      []api.Group
}

// ideaCreatedMsg swaps an optimistic temp id for the server-assigned one.
type ideaCreatedMsg struct {
	tempID string
	idea   api.Idea
}

// createFailedMsg surfaces a failed create. The optimistic local change
// is deliberately not rolled back.
type createFailedMsg struct {
	what string
	err  error
}

// deleteFailedMsg surfaces a failed delete, same policy as creates.
type deleteFailedMsg struct {
	what string
	err  error
}

// writeFailedMsg records a failed best-effort write. Logged only.
type writeFailedMsg struct {
	op  string
	err error
}

type voteMsg struct{ idea api.Idea }

type tagCreatedMsg struct{ tag api.Tag }

type tagDeletedMsg struct{ tagID string }

type connectionCreatedMsg struct{ connection api.Connection }

type groupCreatedMsg struct{ group api.Group }

type groupDeletedMsg struct{ groupID string }

type boardCreatedMsg struct{ board api.Board }

type boardDeletedMsg struct{ boardID string }

type aiResultMsg struct {
	title string
	text  string
}

type aiFailedMsg struct{ err error }

// timerDoneMsg fires after the completion notification is dispatched.
type timerDoneMsg struct{}
