package api

import (
	"errors"
	"fmt"
)

// ErrAINotConfigured signals that the server has no AI provider set up.
// The TUI surfaces this with a distinct message instead of a generic
// request failure.
var ErrAINotConfigured = errors.New("AI is not configured on the server")

// wrapAIError maps the AI endpoints' 503 onto ErrAINotConfigured.
func wrapAIError(op string, err error) error {
	if apiErr, ok := IsAPIError(err); ok && apiErr.IsServiceUnavailable() {
		return ErrAINotConfigured
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// Categorize asks the server's AI to suggest tag names per idea.
func (c *Client) Categorize(boardID string) (*CategorizeResponse, error) {
	var resp CategorizeResponse
	if err := c.Post("/ai/categorize", AIRequest{BoardID: boardID}, &resp); err != nil {
		return nil, wrapAIError("categorize board", err)
	}
	return &resp, nil
}

// Suggestions asks the server's AI for new idea titles.
func (c *Client) Suggestions(boardID string) (*SuggestionsResponse, error) {
	var resp SuggestionsResponse
	if err := c.Post("/ai/suggestions", AIRequest{BoardID: boardID}, &resp); err != nil {
		return nil, wrapAIError("get suggestions", err)
	}
	return &resp, nil
}

// Summarize asks the server's AI for a board summary.
func (c *Client) Summarize(boardID string) (*SummarizeResponse, error) {
	var resp SummarizeResponse
	if err := c.Post("/ai/summarize", AIRequest{BoardID: boardID}, &resp); err != nil {
		return nil, wrapAIError("summarize board", err)
	}
	return &resp, nil
}
