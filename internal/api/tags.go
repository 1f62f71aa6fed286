package api

import "fmt"

// GetTags returns all tags.
func (c *Client) GetTags() ([]Tag, error) {
	var tags []Tag
	if err := c.Get("/tags", &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a new tag. The server rejects names that already
// exist on the board, compared case-insensitively.
func (c *Client) CreateTag(req CreateTagRequest) (*Tag, error) {
	var tag Tag
	if err := c.Post("/tags", req, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

// DeleteTag deletes a tag, removing it from every idea.
func (c *Client) DeleteTag(id string) error {
	if err := c.Delete("/tags/" + id); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", id, err)
	}
	return nil
}
