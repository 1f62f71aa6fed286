package api

import "fmt"

// GetConnections returns all connections, optionally scoped to one board.
func (c *Client) GetConnections(boardID string) ([]Connection, error) {
	var connections []Connection
	if err := c.GetWithQuery("/connections", boardQuery(boardID), &connections); err != nil {
		return nil, fmt.Errorf("failed to get connections: %w", err)
	}
	return connections, nil
}

// CreateConnection creates a directed edge between two ideas.
func (c *Client) CreateConnection(req CreateConnectionRequest) (*Connection, error) {
	var conn Connection
	if err := c.Post("/connections", req, &conn); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	return &conn, nil
}

// DeleteConnection deletes a connection.
func (c *Client) DeleteConnection(id string) error {
	if err := c.Delete("/connections/" + id); err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", id, err)
	}
	return nil
}
