package favourite

import (
	"context"
	"log/slog"
	"time"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
	"github.com/AGBR121/social-media-API/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddFavourite bookmarks a post for a user. Saving the same post twice fails
// with Conflict from the unique constraint.
func (service *Service) AddFavourite(context context.Context, userID, postID string) (*Favourite, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	validator.Required(FieldPostID, postID).UUID(FieldPostID, postID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	f := &Favourite{
		ID:        uuidv7.New(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repo.Create(context, f); err != nil {
		return nil, err
	}

	service.logger.Info("favourite added",
		slog.String("user_id", userID), slog.String("post_id", postID))
	return f, nil
}

// RemoveFavourite deletes a user's bookmark of a post.
func (service *Service) RemoveFavourite(context context.Context, userID, postID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	validator.Required(FieldPostID, postID).UUID(FieldPostID, postID)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.DeleteByUserPost(context, userID, postID)
}

// ListByUser returns a user's bookmarks, newest first.
func (service *Service) ListByUser(context context.Context, userID string) ([]*Favourite, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListByUser(context, userID)
}
