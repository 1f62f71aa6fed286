// Package api provides a client for the idea board REST API.
package api

// Color is a note's color, a closed set of five.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
)

// Colors lists every note color in palette order.
var Colors = []Color{ColorYellow, ColorPink, ColorBlue, ColorGreen, ColorOrange}

// Valid reports whether c is one of the five note colors.
func (c Color) Valid() bool {
	for _, k := range Colors {
		if c == k {
			return true
		}
	}
	return false
}

// ConnectionType classifies a directed edge between two ideas.
type ConnectionType string

const (
	ConnectionRelates     ConnectionType = "relates"
	ConnectionDependsOn   ConnectionType = "depends"
	ConnectionContradicts ConnectionType = "contradicts"
)

// Board is a named collection of ideas.
type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Idea is a single draggable card on the canvas. Position and size are in
// canvas units; Rotation is a small cosmetic angle fixed at creation.
type Idea struct {
	ID          string   `json:"id"`
	BoardID     string   `json:"board_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Color       Color    `json:"color"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Rotation    float64  `json:"rotation"`
	Votes       int      `json:"votes"`
	TagIDs      []string `json:"tag_ids"`
	GroupID     *string  `json:"group_id"`
	CreatedAt   string   `json:"created_at"`
}

// Tag labels ideas; names are unique per board, case-normalized.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Connection is a typed directed edge between two ideas. Source and target
// always differ and reference existing ideas; the server cascades deletion
// when an endpoint idea is deleted.
type Connection struct {
	ID       string         `json:"id"`
	SourceID string         `json:"source_id"`
	TargetID string         `json:"target_id"`
	Label    string         `json:"label,omitempty"`
	Type     ConnectionType `json:"type"`
}

// Group is a named, collapsible bounding container referencing member
// ideas by id. Deleting a group never deletes its members.
type Group struct {
	ID          string   `json:"id"`
	BoardID     string   `json:"board_id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	IsCollapsed bool     `json:"is_collapsed"`
	IdeaIDs     []string `json:"idea_ids"`
}

// HealthStatus is the GET /health response.
type HealthStatus struct {
	Status string `json:"status"`
}

// CreateBoardRequest is the POST /boards body.
type CreateBoardRequest struct {
	Name string `json:"name"`
}

// CreateIdeaRequest is the POST /ideas body.
type CreateIdeaRequest struct {
	BoardID     string   `json:"board_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Color       Color    `json:"color"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Rotation    float64  `json:"rotation,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// PositionUpdate is the PATCH /ideas/{id}/position body, also used for
// PATCH /groups/{id}/position.
type PositionUpdate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SizeUpdate is the PATCH /ideas/{id}/size body, also used for
// PATCH /groups/{id}/size.
type SizeUpdate struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ContentUpdate is the PATCH /ideas/{id}/content body.
type ContentUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TagsUpdate is the PATCH /ideas/{id}/tags body.
type TagsUpdate struct {
	TagIDs []string `json:"tag_ids"`
}

// CreateTagRequest is the POST /tags body.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreateConnectionRequest is the POST /connections body.
type CreateConnectionRequest struct {
	BoardID  string         `json:"board_id"`
	SourceID string         `json:"source_id"`
	TargetID string         `json:"target_id"`
	Label    string         `json:"label,omitempty"`
	Type     ConnectionType `json:"type"`
}

// CreateGroupRequest is the POST /groups body.
type CreateGroupRequest struct {
	BoardID string   `json:"board_id"`
	Name    string   `json:"name"`
	Color   string   `json:"color,omitempty"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	IdeaIDs []string `json:"idea_ids,omitempty"`
}

// UpdateGroupRequest is the PATCH /groups/{id} body. Nil fields are left
// untouched by the server.
type UpdateGroupRequest struct {
	Name        *string  `json:"name,omitempty"`
	Color       *string  `json:"color,omitempty"`
	IsCollapsed *bool    `json:"is_collapsed,omitempty"`
	IdeaIDs     []string `json:"idea_ids,omitempty"`
}

// AIRequest is the body for the POST /ai/* endpoints.
type AIRequest struct {
	BoardID string `json:"board_id"`
}

// CategorizeResponse maps idea ids to suggested tag names.
type CategorizeResponse struct {
	Categories map[string][]string `json:"categories"`
}

// SuggestionsResponse carries AI-proposed idea titles.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SummarizeResponse carries a board summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}
