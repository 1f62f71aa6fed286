package api

import "fmt"

// GetGroups returns all groups, optionally scoped to one board.
func (c *Client) GetGroups(boardID string) ([]Group, error) {
	var groups []Group
	if err := c.GetWithQuery("/groups", boardQuery(boardID), &groups); err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return groups, nil
}

// CreateGroup creates a group around the given ideas.
func (c *Client) CreateGroup(req CreateGroupRequest) (*Group, error) {
	var group Group
	if err := c.Post("/groups", req, &group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return &group, nil
}

// UpdateGroup patches a group's name, color, collapsed flag or membership.
func (c *Client) UpdateGroup(id string, req UpdateGroupRequest) (*Group, error) {
	var group Group
	if err := c.Patch("/groups/"+id, req, &group); err != nil {
		return nil, fmt.Errorf("failed to update group %s: %w", id, err)
	}
	return &group, nil
}

// UpdateGroupPosition moves a group's bounding box.
func (c *Client) UpdateGroupPosition(id string, x, y float64) error {
	if err := c.Patch("/groups/"+id+"/position", PositionUpdate{X: x, Y: y}, nil); err != nil {
		return fmt.Errorf("failed to update position of group %s: %w", id, err)
	}
	return nil
}

// UpdateGroupSize resizes a group's bounding box.
func (c *Client) UpdateGroupSize(id string, width, height float64) error {
	if err := c.Patch("/groups/"+id+"/size", SizeUpdate{Width: width, Height: height}, nil); err != nil {
		return fmt.Errorf("failed to update size of group %s: %w", id, err)
	}
	return nil
}

// DeleteGroup deletes a group. Member ideas survive; only their
// membership is cleared.
func (c *Client) DeleteGroup(id string) error {
	if err := c.Delete("/groups/" + id); err != nil {
		return fmt.Errorf("failed to delete group %s: %w", id, err)
	}
	return nil
}
