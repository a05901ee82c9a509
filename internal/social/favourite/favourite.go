package favourite

import (
	"context"
	"time"
)

// Favourite is a bookmark: a post a user saved for later.
type Favourite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldUserID = "user_id"
	FieldPostID = "post_id"
)

// Repository defines the persistence contract for favourites.
type Repository interface {
	// Create inserts a favourite; a duplicate (user, post) pair surfaces as Conflict.
	Create(context context.Context, f *Favourite) error
	DeleteByUserPost(context context.Context, userID, postID string) error
	ListByUser(context context.Context, userID string) ([]*Favourite, error)
}
