package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
)

// Init returns the startup commands.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.loadInitialData(),
	)
}

// loadInitialData fetches the board list, picks the first board, and
// loads its content concurrently.
func (h *Handler) loadInitialData() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		boards, err := client.GetBoards()
		if err != nil {
			return errMsg{err}
		}

		if len(boards) == 0 {
			return dataLoadedMsg{boards: boards}
		}

		board := boards[0]
		ideas, tags, connections, groups, err := fetchBoardContent(client, board.ID)
		if err != nil {
			return errMsg{err}
		}

		return dataLoadedMsg{
			boards:      boards,
			board:       &board,
			ideas:       ideas,
			tags:        tags,
			connections: connections,
			groups:      groups,
		}
	}
}

// fetchBoardContent loads everything on one board with concurrent
// requests.
func fetchBoardContent(client *api.Client, boardID string) ([]api.Idea, []api.Tag, []api.Connection, []api.Group, error) {
	type ideaResult struct {
		data []api.Idea
		err  error
	}
	type tagResult struct {
		data []api.Tag
		err  error
	}
	type connResult struct {
		data []api.Connection
		err  error
	}
	type groupResult struct {
		data []api.Group
		err  error
	}

	ideaChan := make(chan ideaResult)
	tagChan := make(chan tagResult)
	connChan := make(chan connResult)
	groupChan := make(chan groupResult)

	go func() {
		d, e := client.GetIdeas(boardID)
		ideaChan <- ideaResult{data: d, err: e}
	}()
	go func() {
		d, e := client.GetTags()
		tagChan <- tagResult{data: d, err: e}
	}()
	go func() {
		d, e := client.GetConnections(boardID)
		connChan <- connResult{data: d, err: e}
	}()
	go func() {
		d, e := client.GetGroups(boardID)
		groupChan <- groupResult{data: d, err: e}
	}()

	iRes := <-ideaChan
	tRes := <-tagChan
	cRes := <-connChan
	gRes := <-groupChan

	for _, err := range []error{iRes.err, tRes.err, cRes.err, gRes.err} {
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return iRes.data, tRes.data, cRes.data, gRes.data, nil
}

// switchBoard loads another board's content; history and selection are
// cleared when the data lands.
func (h *Handler) switchBoard(board api.Board) tea.Cmd {
	client := h.Client
	h.Loading = true
	return func() tea.Msg {
		ideas, _, connections, groups, err := fetchBoardContent(client, board.ID)
		if err != nil {
			return boardLoadFailedMsg{name: board.Name, err: err}
		}
		return boardDataMsg{
			board:       board,
			ideas:       ideas,
			connections: connections,
			groups:      groups,
		}
	}
}
