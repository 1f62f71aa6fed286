package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 4 * time.Second

// showNotice displays a transient message and schedules its dismissal.
// The sequence number keeps an older expiry from clearing a newer notice.
func (h *Handler) showNotice(text string) tea.Cmd {
	h.NoticeSeq++
	h.Notice = text
	seq := h.NoticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
