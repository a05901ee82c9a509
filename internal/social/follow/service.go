package follow

import (
	"context"
	"log/slog"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
	"github.com/AGBR121/social-media-API/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Follow creates a new edge in the follow graph.
//
// Self-follows are rejected outright, and duplicate edges surface as a
// Conflict through the table's unique constraint.
func (service *Service) Follow(context context.Context, e *Edge) error {
	validator := &validate.Validator{}

	validator.Required(FieldFollowerID, e.FollowerID).UUID(FieldFollowerID, e.FollowerID)
	validator.Required(FieldFollowingID, e.FollowingID).UUID(FieldFollowingID, e.FollowingID)
	validator.Custom(FieldFollowingID, e.FollowerID != "" && e.FollowerID == e.FollowingID,
		"A user cannot follow themselves")

	if err := validator.Err(); err != nil {
		return err
	}

	e.ID = uuidv7.New()

	if err := service.repo.Create(context, e); err != nil {
		return err
	}

	service.logger.Info("follow_created",
		slog.String("follower_id", e.FollowerID),
		slog.String("following_id", e.FollowingID),
	)
	return nil
}

// Unfollow removes an edge by its ID.
func (service *Service) Unfollow(context context.Context, id string) error {
	validator := &validate.Validator{}
	validator.Required(FieldEdgeID, id)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("follow_deleted", slog.String("edge_id", id))
	return nil
}

// ListFollowees returns the IDs of every user the follower follows.
func (service *Service) ListFollowees(context context.Context, followerID string) ([]string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFollowerID, followerID).UUID(FieldFollowerID, followerID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListFollowees(context, followerID)
}

// ListFollowers returns the IDs of every user following the given user.
func (service *Service) ListFollowers(context context.Context, followingID string) ([]string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFollowingID, followingID).UUID(FieldFollowingID, followingID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListFollowers(context, followingID)
}
