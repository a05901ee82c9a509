package post

import "time"

// Post represents a single publication owned by one user.
type Post struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	LikeCount   int       `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Visible reports whether a post may be shown to a general viewer.
//
// This predicate is the single source of truth for visibility. The feed
// aggregator, the public profile listing, and the followed-user listing all
// answer "can this viewer see this post" through here, never through an
// ad-hoc IsPublic check at the call site.
func Visible(post *Post) bool {
	return post.IsPublic
}

// UpdateInput carries the mutable fields of a post for partial updates.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

// Global field names for validation
const (
	FieldOwnerID     = "owner_id"
	FieldPostID      = "post_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldFollowerID  = "follower_id"
	FieldFollowedID  = "followed_id"
)

// Validation bounds mirrored by the database column definitions.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)
