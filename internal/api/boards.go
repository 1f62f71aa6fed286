package api

import "fmt"

// Health checks the service's health endpoint.
func (c *Client) Health() (*HealthStatus, error) {
	var status HealthStatus
	if err := c.Get("/health", &status); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return &status, nil
}

// GetBoards returns all boards.
func (c *Client) GetBoards() ([]Board, error) {
	var boards []Board
	if err := c.Get("/boards", &boards); err != nil {
		return nil, fmt.Errorf("failed to get boards: %w", err)
	}
	return boards, nil
}

// CreateBoard creates a new board.
func (c *Client) CreateBoard(req CreateBoardRequest) (*Board, error) {
	var board Board
	if err := c.Post("/boards", req, &board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return &board, nil
}

// DeleteBoard deletes a board and everything on it.
func (c *Client) DeleteBoard(id string) error {
	if err := c.Delete("/boards/" + id); err != nil {
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	return nil
}
