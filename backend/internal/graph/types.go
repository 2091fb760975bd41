package graph

import "time"

// ============================================================================
// Graph Types
// ============================================================================

// User represents a user node in the social graph. Friends is derived from
// FRIEND relationships at read time and always lists neighbor ids.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Age             int       `json:"age"`
	Hobbies         []string  `json:"hobbies"`
	Friends         []string  `json:"friends"`
	PopularityScore float64   `json:"popularityScore"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Age      *int
	Hobbies  *[]string
}

// NodeData is the payload carried by each projected node. The frontend keys
// off data.id, so it is duplicated from the node id.
type NodeData struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Age        int      `json:"age"`
	Popularity float64  `json:"popularity"`
	Hobbies    []string `json:"hobbies"`
	Label      string   `json:"label"`
}

// Node is a projected graph node
type Node struct {
	ID   string   `json:"id"`
	Data NodeData `json:"data"`
}

// Edge is the canonical, deduplicated representation of one friendship
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphData is the node/edge projection of the full user set
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
