package like_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
	"github.com/AGBR121/social-media-API/internal/social/like"
)

const (
	postID = "0191d2a0-0000-7000-8000-000000000001"
	userID = "0191d2a0-0000-7000-8000-000000000002"
)

// fakeRepository mirrors the postgres store: the like row and the counter
// move together or not at all.
type fakeRepository struct {
	likes     []*like.Like
	counter   int
	createErr error
}

func (f *fakeRepository) Create(_ context.Context, l *like.Like) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.likes = append(f.likes, l)
	f.counter++
	return nil
}

func (f *fakeRepository) DeleteByPostUser(_ context.Context, post, user string) error {
	for i, l := range f.likes {
		if l.PostID == post && l.UserID == user {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			f.counter = max(f.counter-1, 0)
			return nil
		}
	}
	return apperr.NotFound("Like")
}

func (f *fakeRepository) ListByPost(_ context.Context, post string) ([]*like.Like, error) {
	result := make([]*like.Like, 0)
	for _, l := range f.likes {
		if l.PostID == post {
			result = append(result, l)
		}
	}
	return result, nil
}

func (f *fakeRepository) ListByUser(_ context.Context, user string) ([]*like.Like, error) {
	result := make([]*like.Like, 0)
	for _, l := range f.likes {
		if l.UserID == user {
			result = append(result, l)
		}
	}
	return result, nil
}

func TestService_LikeUnlikeRoundTrip(t *testing.T) {
	repo := &fakeRepository{}
	service := like.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	created, err := service.LikePost(context.Background(), postID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, repo.counter)
	require.Len(t, repo.likes, 1)

	require.NoError(t, service.UnlikePost(context.Background(), postID, userID))
	assert.Zero(t, repo.counter)
	assert.Empty(t, repo.likes)
}

func TestService_LikePost_DuplicateSurfacesConflict(t *testing.T) {
	repo := &fakeRepository{createErr: apperr.Conflict("Resource already exists")}
	service := like.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := service.LikePost(context.Background(), postID, userID)

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	// A rejected record leaves no trace, counter included.
	assert.Empty(t, repo.likes)
	assert.Zero(t, repo.counter)
}

func TestService_UnlikePost_MissingLike(t *testing.T) {
	repo := &fakeRepository{}
	service := like.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := service.UnlikePost(context.Background(), postID, userID)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Zero(t, repo.counter)
}
