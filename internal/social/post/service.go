package post

import (
	"context"
	"log/slog"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
	"github.com/AGBR121/social-media-API/pkg/pointer"
	"github.com/AGBR121/social-media-API/pkg/slice"
	"github.com/AGBR121/social-media-API/pkg/uuidv7"
)

// FollowChecker is the slice of the follow graph this service needs: whether
// one user currently follows another.
type FollowChecker interface {
	Exists(context context.Context, followerID, followingID string) (bool, error)
}

type Service struct {
	repo    Repository
	follows FollowChecker
	logger  *slog.Logger
}

func NewService(repo Repository, follows FollowChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		follows: follows,
		logger:  logger,
	}
}

// CreatePost validates and persists a new post.
func (service *Service) CreatePost(context context.Context, p *Post) error {
	validator := &validate.Validator{}

	validator.Required(FieldOwnerID, p.OwnerID).UUID(FieldOwnerID, p.OwnerID)
	validator.Required(FieldTitle, p.Title).MaxLen(FieldTitle, p.Title, MaxTitleLen)
	validator.MaxLen(FieldDescription, p.Description, MaxDescriptionLen)

	if err := validator.Err(); err != nil {
		return err
	}

	p.ID = uuidv7.New()
	p.LikeCount = 0

	if err := service.repo.Create(context, p); err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.String("post_id", p.ID),
		slog.String("owner_id", p.OwnerID),
		slog.Bool("is_public", p.IsPublic),
	)
	return nil
}

// GetPost returns a single post by ID.
func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	return service.repo.GetByID(context, id)
}

// UpdatePost applies a partial update to an existing post.
func (service *Service) UpdatePost(context context.Context, id string, input UpdateInput) (*Post, error) {
	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	existing.Title = pointer.Fallback(input.Title, existing.Title)
	existing.Description = pointer.Fallback(input.Description, existing.Description)
	existing.IsPublic = pointer.Fallback(input.IsPublic, existing.IsPublic)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, existing.Title).MaxLen(FieldTitle, existing.Title, MaxTitleLen)
	validator.MaxLen(FieldDescription, existing.Description, MaxDescriptionLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.String("post_id", id))
	return existing, nil
}

// DeletePost removes a post permanently.
func (service *Service) DeletePost(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))
	return nil
}

// ListByOwner returns every post belonging to a user, newest first.
func (service *Service) ListByOwner(context context.Context, ownerID string) ([]*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldOwnerID, ownerID).UUID(FieldOwnerID, ownerID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListByOwner(context, ownerID)
}

// ListPublicByOwner returns the publicly visible posts of a user.
func (service *Service) ListPublicByOwner(context context.Context, ownerID string, skip, take int) ([]*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldOwnerID, ownerID).UUID(FieldOwnerID, ownerID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListPublicByOwner(context, ownerID, skip, take)
}

// ListOfFollowedUser returns the public posts of one specific followed user.
//
// The viewer must actually follow the target; otherwise the request is
// rejected rather than silently returning the public subset.
func (service *Service) ListOfFollowedUser(context context.Context, followerID, followedID string) ([]*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFollowerID, followerID).UUID(FieldFollowerID, followerID)
	validator.Required(FieldFollowedID, followedID).UUID(FieldFollowedID, followedID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	isFollowing, err := service.follows.Exists(context, followerID, followedID)
	if err != nil {
		return nil, err
	}
	if !isFollowing {
		return nil, validate.RequiredError(FieldFollowedID, "You are not following this user")
	}

	all, err := service.repo.ListByOwner(context, followedID)
	if err != nil {
		return nil, err
	}

	return slice.Filter(all, Visible), nil
}
