package follow

import "time"

// Edge represents one directed follow relationship.
type Edge struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldEdgeID      = "edge_id"
	FieldFollowerID  = "follower_id"
	FieldFollowingID = "following_id"
)
