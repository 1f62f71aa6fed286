// Package tui wires the shared state, the input handler, and the
// renderer into one Bubble Tea model.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/config"
	"github.com/hy4ri/ideaboard/internal/tui/logic"
	"github.com/hy4ri/ideaboard/internal/tui/state"
	"github.com/hy4ri/ideaboard/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state   *state.State
	handler *logic.Handler
}

// NewApp creates the application model.
func NewApp(client *api.Client, cfg *config.Config) *App {
	s := state.New(client, cfg)
	return &App{
		state:   s,
		handler: logic.NewHandler(s),
	}
}

// Init starts the spinner and the initial data load.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update delegates every message to the handler.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View renders the current frame.
func (a *App) View() string {
	return ui.View(a.state, a.handler.Keymap())
}
