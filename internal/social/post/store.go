package post

import "context"

// Repository defines the persistence contract for posts.
type Repository interface {
	Create(context context.Context, p *Post) error
	GetByID(context context.Context, id string) (*Post, error)
	Update(context context.Context, p *Post) error
	Delete(context context.Context, id string) error

	// ListByOwner returns every post of a user, newest first.
	ListByOwner(context context.Context, ownerID string) ([]*Post, error)

	// ListPublicByOwner returns the user's public posts ordered by
	// updatedat descending, windowed by skip/take. Zero rows is a valid
	// result, never an error.
	ListPublicByOwner(context context.Context, ownerID string, skip, take int) ([]*Post, error)
}
