package api

import "fmt"

// GetIdeas returns all ideas, optionally scoped to one board.
func (c *Client) GetIdeas(boardID string) ([]Idea, error) {
	var ideas []Idea
	if err := c.GetWithQuery("/ideas", boardQuery(boardID), &ideas); err != nil {
		return nil, fmt.Errorf("failed to get ideas: %w", err)
	}
	return ideas, nil
}

// CreateIdea creates a new idea.
func (c *Client) CreateIdea(req CreateIdeaRequest) (*Idea, error) {
	var idea Idea
	if err := c.Post("/ideas", req, &idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return &idea, nil
}

// UpdateIdeaPosition moves an idea to a new canvas position.
func (c *Client) UpdateIdeaPosition(id string, x, y float64) error {
	if err := c.Patch("/ideas/"+id+"/position", PositionUpdate{X: x, Y: y}, nil); err != nil {
		return fmt.Errorf("failed to update position of idea %s: %w", id, err)
	}
	return nil
}

// UpdateIdeaSize resizes an idea.
func (c *Client) UpdateIdeaSize(id string, width, height float64) error {
	if err := c.Patch("/ideas/"+id+"/size", SizeUpdate{Width: width, Height: height}, nil); err != nil {
		return fmt.Errorf("failed to update size of idea %s: %w", id, err)
	}
	return nil
}

// UpdateIdeaContent replaces an idea's title and description.
func (c *Client) UpdateIdeaContent(id, title, description string) error {
	if err := c.Patch("/ideas/"+id+"/content", ContentUpdate{Title: title, Description: description}, nil); err != nil {
		return fmt.Errorf("failed to update content of idea %s: %w", id, err)
	}
	return nil
}

// UpdateIdeaTags replaces an idea's tag set.
func (c *Client) UpdateIdeaTags(id string, tagIDs []string) error {
	if err := c.Patch("/ideas/"+id+"/tags", TagsUpdate{TagIDs: tagIDs}, nil); err != nil {
		return fmt.Errorf("failed to update tags of idea %s: %w", id, err)
	}
	return nil
}

// VoteIdea adds one vote to an idea.
func (c *Client) VoteIdea(id string) (*Idea, error) {
	var idea Idea
	if err := c.Post("/ideas/"+id+"/vote", nil, &idea); err != nil {
		return nil, fmt.Errorf("failed to vote for idea %s: %w", id, err)
	}
	return &idea, nil
}

// DeleteIdea deletes an idea. The server cascades connection deletion.
func (c *Client) DeleteIdea(id string) error {
	if err := c.Delete("/ideas/" + id); err != nil {
		return fmt.Errorf("failed to delete idea %s: %w", id, err)
	}
	return nil
}
