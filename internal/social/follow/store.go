package follow

import "context"

// Repository defines the persistence contract for the follow graph.
type Repository interface {
	// Create inserts a new edge. A duplicate (follower, following) pair
	// violates the table's unique constraint and surfaces as a Conflict.
	Create(context context.Context, e *Edge) error

	Delete(context context.Context, id string) error

	// Exists reports whether follower currently follows following.
	Exists(context context.Context, followerID, followingID string) (bool, error)

	// ListFollowees returns the IDs of every user the follower follows.
	// An empty slice is a valid result.
	ListFollowees(context context.Context, followerID string) ([]string, error)

	// ListFollowers returns the IDs of every user following the given user.
	ListFollowers(context context.Context, followingID string) ([]string, error)
}
