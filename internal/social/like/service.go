package like

import (
	"context"
	"log/slog"
	"time"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
	"github.com/AGBR121/social-media-API/pkg/uuidv7"
)

// Service coordinates like records. The repository keeps the denormalized
// counter on the post row in step with the like table.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// LikePost records a like. A second like from the same user on the same post
// fails with Conflict from the unique constraint.
func (service *Service) LikePost(context context.Context, postID, userID string) (*Like, error) {
	validator := &validate.Validator{}
	validator.Required(FieldPostID, postID).UUID(FieldPostID, postID)
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	if validator.HasErrors() {
		return nil, validator.Err()
	}

	l := &Like{
		ID:        uuidv7.New(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repo.Create(context, l); err != nil {
		return nil, err
	}

	service.logger.Info("post liked",
		slog.String("post_id", postID), slog.String("user_id", userID))
	return l, nil
}

// UnlikePost removes the like a user placed on a post.
func (service *Service) UnlikePost(context context.Context, postID, userID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldPostID, postID).UUID(FieldPostID, postID)
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	if validator.HasErrors() {
		return validator.Err()
	}
	return service.repo.DeleteByPostUser(context, postID, userID)
}

// ListByPost returns every like on a post, newest first.
func (service *Service) ListByPost(context context.Context, postID string) ([]*Like, error) {
	validator := &validate.Validator{}
	validator.Required(FieldPostID, postID).UUID(FieldPostID, postID)
	if validator.HasErrors() {
		return nil, validator.Err()
	}
	return service.repo.ListByPost(context, postID)
}

// ListByUser returns every like a user has made, newest first.
func (service *Service) ListByUser(context context.Context, userID string) ([]*Like, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID).UUID(FieldUserID, userID)
	if validator.HasErrors() {
		return nil, validator.Err()
	}
	return service.repo.ListByUser(context, userID)
}
