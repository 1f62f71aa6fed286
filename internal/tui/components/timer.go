// Package components holds small reusable TUI widgets.
package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerTickMsg is sent every second while the session timer runs.
type TimerTickMsg struct{}

// Tick returns a command that sends a TimerTickMsg after one second.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{}
	})
}

// FormatDuration formats a duration as MM:SS or HH:MM:SS if needed.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
