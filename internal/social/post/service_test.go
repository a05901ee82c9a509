package post_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
	"github.com/AGBR121/social-media-API/internal/social/post"
	"github.com/AGBR121/social-media-API/pkg/pointer"
)

const (
	ownerID    = "0191d2a0-0000-7000-8000-000000000001"
	viewerID   = "0191d2a0-0000-7000-8000-000000000002"
	strangerID = "0191d2a0-0000-7000-8000-000000000003"
)

type fakeRepository struct {
	posts map[string]*post.Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[string]*post.Post)}
}

func (f *fakeRepository) Create(_ context.Context, p *post.Post) error {
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return p, nil
}

func (f *fakeRepository) Update(_ context.Context, p *post.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return apperr.NotFound("Post")
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepository) ListByOwner(_ context.Context, owner string) ([]*post.Post, error) {
	result := make([]*post.Post, 0)
	for _, p := range f.posts {
		if p.OwnerID == owner {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeRepository) ListPublicByOwner(_ context.Context, owner string, skip, take int) ([]*post.Post, error) {
	result := make([]*post.Post, 0)
	for _, p := range f.posts {
		if p.OwnerID == owner && p.IsPublic {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeFollowChecker struct {
	pairs map[[2]string]bool
}

func (f *fakeFollowChecker) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	return f.pairs[[2]string{followerID, followingID}], nil
}

func newService(repo post.Repository, follows post.FollowChecker) *post.Service {
	return post.NewService(repo, follows, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVisible(t *testing.T) {
	assert.True(t, post.Visible(&post.Post{IsPublic: true}))
	assert.False(t, post.Visible(&post.Post{IsPublic: false}))
}

func TestService_CreatePost(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, &fakeFollowChecker{})

	p := &post.Post{
		OwnerID:   ownerID,
		Title:     "First post",
		IsPublic:  true,
		LikeCount: 99, // must be reset on create
	}

	require.NoError(t, service.CreatePost(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.LikeCount)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", stored.Title)
}

func TestService_CreatePost_Validation(t *testing.T) {
	tests := []struct {
		name string
		post *post.Post
	}{
		{"missing_owner", &post.Post{Title: "x"}},
		{"malformed_owner", &post.Post{OwnerID: "abc", Title: "x"}},
		{"missing_title", &post.Post{OwnerID: ownerID}},
		{"title_too_long", &post.Post{OwnerID: ownerID, Title: strings.Repeat("a", post.MaxTitleLen+1)}},
		{"description_too_long", &post.Post{
			OwnerID:     ownerID,
			Title:       "ok",
			Description: strings.Repeat("a", post.MaxDescriptionLen+1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newService(repo, &fakeFollowChecker{})

			err := service.CreatePost(context.Background(), tt.post)

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.posts)
		})
	}
}

func TestService_UpdatePost_PartialUpdate(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, &fakeFollowChecker{})

	p := &post.Post{OwnerID: ownerID, Title: "Original", Description: "desc", IsPublic: true}
	require.NoError(t, service.CreatePost(context.Background(), p))

	updated, err := service.UpdatePost(context.Background(), p.ID, post.UpdateInput{
		IsPublic: pointer.To(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.False(t, updated.IsPublic)
}

func TestService_UpdatePost_NotFound(t *testing.T) {
	service := newService(newFakeRepository(), &fakeFollowChecker{})

	_, err := service.UpdatePost(context.Background(), "0191d2a0-0000-7000-8000-00000000ffff", post.UpdateInput{})

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_ListOfFollowedUser(t *testing.T) {
	repo := newFakeRepository()
	now := time.Now().UTC()
	repo.posts["p1"] = &post.Post{ID: "p1", OwnerID: ownerID, Title: "public", IsPublic: true, UpdatedAt: now}
	repo.posts["p2"] = &post.Post{ID: "p2", OwnerID: ownerID, Title: "private", IsPublic: false, UpdatedAt: now}

	follows := &fakeFollowChecker{pairs: map[[2]string]bool{
		{viewerID, ownerID}: true,
	}}
	service := newService(repo, follows)

	visible, err := service.ListOfFollowedUser(context.Background(), viewerID, ownerID)

	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "p1", visible[0].ID)
}

func TestService_ListOfFollowedUser_RequiresFollowEdge(t *testing.T) {
	repo := newFakeRepository()
	follows := &fakeFollowChecker{pairs: map[[2]string]bool{}}
	service := newService(repo, follows)

	_, err := service.ListOfFollowedUser(context.Background(), strangerID, ownerID)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
