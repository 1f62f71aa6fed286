// Package logic contains the board controller: it owns every mutation of
// the state, dispatches keyboard and mouse input into the canvas gesture
// machines, decides what is significant enough for the history log, and
// mediates optimistic-update-then-remote-sync for every change.
package logic

import (
	"log"
	"os"

	"github.com/hy4ri/ideaboard/internal/tui/state"
)

// Debug logger. Write failures on best-effort syncs land here instead of
// the screen.
var debugLog *log.Logger

func init() {
	f, err := os.OpenFile("ideaboard.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		debugLog = log.New(f, "SYNC: ", log.Ltime|log.Lshortfile)
	}
}

func logf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// Handler wraps the shared state with the update logic.
type Handler struct {
	*state.State
	keymap Keymap
}

// NewHandler creates a handler over the given state.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:  s,
		keymap: DefaultKeymap(),
	}
}

// Keymap exposes the active keymap, mainly for the help view.
func (h *Handler) Keymap() Keymap {
	return h.keymap
}
