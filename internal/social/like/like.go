package like

import (
	"context"
	"time"
)

// Like records that a user liked a post. The aggregate counter lives on the
// post row; this table is the per-user record behind it.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldLikeID = "like_id"
	FieldPostID = "post_id"
	FieldUserID = "user_id"
)

// Repository defines the persistence contract for likes. Create and
// DeleteByPostUser adjust the post's like counter in the same transaction as
// the like row, so the counter never drifts on a partial write.
type Repository interface {
	// Create inserts a like; a duplicate (post, user) pair surfaces as Conflict.
	Create(context context.Context, l *Like) error
	// DeleteByPostUser removes the like a user placed on a post.
	DeleteByPostUser(context context.Context, postID, userID string) error
	ListByPost(context context.Context, postID string) ([]*Like, error)
	ListByUser(context context.Context, userID string) ([]*Like, error)
}
