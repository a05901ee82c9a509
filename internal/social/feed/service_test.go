package feed_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
	"github.com/AGBR121/social-media-API/internal/social/feed"
	"github.com/AGBR121/social-media-API/internal/social/post"
)

const (
	followerID = "0191d2a0-0000-7000-8000-00000000000f"
	followeeA  = "0191d2a0-0000-7000-8000-00000000000a"
	followeeB  = "0191d2a0-0000-7000-8000-00000000000b"
	followeeC  = "0191d2a0-0000-7000-8000-00000000000c"
)

type fakeFollowGraph struct {
	followees []string
	err       error
	calls     atomic.Int32
}

func (f *fakeFollowGraph) ListFollowees(_ context.Context, _ string) ([]string, error) {
	f.calls.Add(1)
	return f.followees, f.err
}

type fakePostSource struct {
	mu           sync.Mutex
	byOwner      map[string][]*post.Post
	errFor       map[string]error
	calls        atomic.Int32
	active       int32
	maxActive    int32
	gotSkip      int
	gotTake      int
	wantDeadline bool
	t            *testing.T
}

func (f *fakePostSource) ListPublicByOwner(ctx context.Context, ownerID string, skip, take int) ([]*post.Post, error) {
	f.calls.Add(1)

	current := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		recorded := atomic.LoadInt32(&f.maxActive)
		if current <= recorded || atomic.CompareAndSwapInt32(&f.maxActive, recorded, current) {
			break
		}
	}

	// Give overlapping workers a chance to actually overlap.
	time.Sleep(time.Millisecond)

	if f.wantDeadline {
		_, hasDeadline := ctx.Deadline()
		assert.True(f.t, hasDeadline)
	}

	f.mu.Lock()
	f.gotSkip, f.gotTake = skip, take
	posts := f.byOwner[ownerID]
	err := f.errFor[ownerID]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if len(posts) > take {
		posts = posts[:take]
	}
	return posts, nil
}

type fakeDirectory struct {
	names  map[string]string
	errFor map[string]error
	calls  atomic.Int32
}

func (f *fakeDirectory) DisplayName(_ context.Context, id string) (string, error) {
	f.calls.Add(1)
	if err := f.errFor[id]; err != nil {
		return "", err
	}
	return f.names[id], nil
}

func newService(follows feed.FollowGraph, posts feed.PostSource, directory feed.UserDirectory) *feed.Service {
	return feed.NewService(follows, posts, directory, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func publicPost(id, owner string, updatedAt time.Time) *post.Post {
	return &post.Post{
		ID:        id,
		OwnerID:   owner,
		Title:     "post " + id,
		IsPublic:  true,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

/*
TestService_GetFeedPage_Validation verifies that malformed input is rejected
before any store is touched.
*/
func TestService_GetFeedPage_Validation(t *testing.T) {
	tests := []struct {
		name       string
		followerID string
		page       int
		limit      int
	}{
		{"empty_follower", "", 1, 10},
		{"malformed_follower", "not-a-uuid", 1, 10},
		{"zero_page", followerID, 0, 10},
		{"negative_page", followerID, -1, 10},
		{"zero_limit", followerID, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follows := &fakeFollowGraph{followees: []string{followeeA}}
			posts := &fakePostSource{byOwner: map[string][]*post.Post{}}
			directory := &fakeDirectory{names: map[string]string{}}
			service := newService(follows, posts, directory)

			result, err := service.GetFeedPage(context.Background(), tt.followerID, tt.page, tt.limit)

			require.Error(t, err)
			assert.Nil(t, result)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			assert.Zero(t, follows.calls.Load())
			assert.Zero(t, posts.calls.Load())
			assert.Zero(t, directory.calls.Load())
		})
	}
}

func TestService_GetFeedPage_NoFollowees(t *testing.T) {
	follows := &fakeFollowGraph{followees: nil}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, followerID, result.Follower)
	assert.Empty(t, result.Groups)
	assert.Empty(t, result.Warnings)
	assert.Zero(t, posts.calls.Load())
}

/*
TestService_GetFeedPage_GroupsSortedByNewestPost covers the canonical
two-followee scenario: the group holding the globally newest post leads the
page, and each group keeps its own posts newest first.
*/
func TestService_GetFeedPage_GroupsSortedByNewestPost(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	follows := &fakeFollowGraph{followees: []string{followeeB, followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{
		followeeA: {publicPost("p1", followeeA, t3), publicPost("p2", followeeA, t1)},
		followeeB: {publicPost("p3", followeeB, t2)},
	}}
	directory := &fakeDirectory{names: map[string]string{
		followeeA: "Alice",
		followeeB: "Bruno",
	}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Groups, 2)
	assert.Empty(t, result.Warnings)

	first, second := result.Groups[0], result.Groups[1]
	assert.Equal(t, followeeA, first.FolloweeID)
	assert.Equal(t, "Alice", first.Followee)
	require.Len(t, first.Posts, 2)
	assert.Equal(t, "p1", first.Posts[0].ID)
	assert.Equal(t, "p2", first.Posts[1].ID)

	assert.Equal(t, followeeB, second.FolloweeID)
	assert.Equal(t, "Bruno", second.Followee)
	require.Len(t, second.Posts, 1)
	assert.Equal(t, "p3", second.Posts[0].ID)
}

func TestService_GetFeedPage_AllPrivateFolloweeKeepsEmptyGroup(t *testing.T) {
	follows := &fakeFollowGraph{followees: []string{followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{
		followeeA: {},
	}}
	directory := &fakeDirectory{names: map[string]string{followeeA: "Alice"}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, followeeA, result.Groups[0].FolloweeID)
	assert.Empty(t, result.Groups[0].Posts)
	assert.Empty(t, result.Warnings)
}

func TestService_GetFeedPage_EmptyGroupsSortLast(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	follows := &fakeFollowGraph{followees: []string{followeeC, followeeB, followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{
		followeeA: {},
		followeeB: {publicPost("p1", followeeB, now)},
		followeeC: {},
	}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	first, err := service.GetFeedPage(context.Background(), followerID, 1, 10)
	require.NoError(t, err)
	require.Len(t, first.Groups, 3)

	assert.Equal(t, followeeB, first.Groups[0].FolloweeID)
	// Empty groups trail, ordered by followee ID.
	assert.Equal(t, followeeA, first.Groups[1].FolloweeID)
	assert.Equal(t, followeeC, first.Groups[2].FolloweeID)

	// Deterministic across rebuilds.
	for iteration := 0; iteration < 5; iteration++ {
		again, err := service.GetFeedPage(context.Background(), followerID, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, first.Groups, again.Groups)
	}
}

func TestService_GetFeedPage_TimestampTieBreaksByFolloweeID(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	follows := &fakeFollowGraph{followees: []string{followeeB, followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{
		followeeA: {publicPost("p1", followeeA, now)},
		followeeB: {publicPost("p2", followeeB, now)},
	}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Groups, 2)
	assert.Equal(t, followeeA, result.Groups[0].FolloweeID)
	assert.Equal(t, followeeB, result.Groups[1].FolloweeID)
}

func TestService_GetFeedPage_FollowGraphFailureIsFatal(t *testing.T) {
	follows := &fakeFollowGraph{err: errors.New("connection refused")}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.Error(t, err)
	assert.Nil(t, result)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "SERVICE_UNAVAILABLE", ae.Code)
	assert.Zero(t, posts.calls.Load())
}

/*
TestService_GetFeedPage_FailingFolloweeBecomesWarning verifies graceful
degradation: one broken followee costs its own group plus a warning, never
the page.
*/
func TestService_GetFeedPage_FailingFolloweeBecomesWarning(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	follows := &fakeFollowGraph{followees: []string{followeeA, followeeB, followeeC}}
	posts := &fakePostSource{
		byOwner: map[string][]*post.Post{
			followeeA: {publicPost("p1", followeeA, now)},
			followeeC: {publicPost("p2", followeeC, now.Add(-time.Hour))},
		},
		errFor: map[string]error{followeeB: errors.New("query timeout")},
	}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Groups, 2)
	assert.Equal(t, followeeA, result.Groups[0].FolloweeID)
	assert.Equal(t, followeeC, result.Groups[1].FolloweeID)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, followeeB, result.Warnings[0].FolloweeID)
}

func TestService_GetFeedPage_DeadlineExceededBecomesWarning(t *testing.T) {
	follows := &fakeFollowGraph{followees: []string{followeeA}}
	posts := &fakePostSource{
		byOwner:      map[string][]*post.Post{},
		errFor:       map[string]error{followeeA: context.DeadlineExceeded},
		wantDeadline: true,
		t:            t,
	}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	assert.Empty(t, result.Groups)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, followeeA, result.Warnings[0].FolloweeID)
}

func TestService_GetFeedPage_MissingDisplayNameKeepsGroup(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	follows := &fakeFollowGraph{followees: []string{followeeA, followeeB}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{
		followeeA: {publicPost("p1", followeeA, now)},
		followeeB: {publicPost("p2", followeeB, now.Add(-time.Hour))},
	}}
	directory := &fakeDirectory{
		names:  map[string]string{followeeB: "Bruno"},
		errFor: map[string]error{followeeA: apperr.NotFound("User")},
	}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Groups, 2)

	// The orphaned group stays, posts included, just without a name.
	assert.Equal(t, followeeA, result.Groups[0].FolloweeID)
	assert.Empty(t, result.Groups[0].Followee)
	require.Len(t, result.Groups[0].Posts, 1)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, followeeA, result.Warnings[0].FolloweeID)
}

func TestService_GetFeedPage_PaginationWindowPerFollowee(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	manyPosts := make([]*post.Post, 0, 3)
	for i := 0; i < 3; i++ {
		manyPosts = append(manyPosts, publicPost(string(rune('a'+i)), followeeA, now.Add(-time.Duration(i)*time.Minute)))
	}

	follows := &fakeFollowGraph{followees: []string{followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{followeeA: manyPosts}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 3, 2)

	require.NoError(t, err)
	require.Len(t, result.Groups, 1)
	assert.LessOrEqual(t, len(result.Groups[0].Posts), 2)

	// Page 3 with limit 2 asks each followee for their own window.
	assert.Equal(t, 4, posts.gotSkip)
	assert.Equal(t, 2, posts.gotTake)
}

func TestService_GetFeedPage_ConcurrencyCapped(t *testing.T) {
	followees := make([]string, 0, 20)
	byOwner := make(map[string][]*post.Post, 20)
	for i := 0; i < 20; i++ {
		followeeID := fmt.Sprintf("0191d2a0-0000-7000-8000-%012d", i)
		followees = append(followees, followeeID)
		byOwner[followeeID] = []*post.Post{}
	}

	follows := &fakeFollowGraph{followees: followees}
	posts := &fakePostSource{byOwner: byOwner}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 10)

	require.NoError(t, err)
	assert.Len(t, result.Groups, 20)
	assert.Equal(t, int32(20), posts.calls.Load())
	assert.LessOrEqual(t, atomic.LoadInt32(&posts.maxActive), int32(8))
}

func TestService_GetFeedPage_EachGroupRespectsLimit(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	oversized := make([]*post.Post, 0, 10)
	for i := 0; i < 10; i++ {
		oversized = append(oversized, publicPost(string(rune('a'+i)), followeeA, now.Add(-time.Duration(i)*time.Minute)))
	}

	follows := &fakeFollowGraph{followees: []string{followeeA}}
	posts := &fakePostSource{byOwner: map[string][]*post.Post{followeeA: oversized}}
	directory := &fakeDirectory{names: map[string]string{}}
	service := newService(follows, posts, directory)

	result, err := service.GetFeedPage(context.Background(), followerID, 1, 3)

	require.NoError(t, err)
	require.Len(t, result.Groups, 1)
	assert.LessOrEqual(t, len(result.Groups[0].Posts), 3)
}

// blockingPostSource holds every query open until release is closed, so a
// test can cancel one caller while the page is still being built.
type blockingPostSource struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	byOwner map[string][]*post.Post
}

func (f *blockingPostSource) ListPublicByOwner(ctx context.Context, ownerID string, _, take int) ([]*post.Post, error) {
	f.once.Do(func() { close(f.entered) })
	select {
	case <-f.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	posts := f.byOwner[ownerID]
	if len(posts) > take {
		posts = posts[:take]
	}
	return posts, nil
}

func TestService_GetFeedPage_CallerCancelDoesNotFailSharedBuild(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	follows := &fakeFollowGraph{followees: []string{followeeA}}
	posts := &blockingPostSource{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		byOwner: map[string][]*post.Post{followeeA: {publicPost("p1", followeeA, now)}},
	}
	directory := &fakeDirectory{names: map[string]string{followeeA: "Alice"}}
	service := newService(follows, posts, directory)

	firstContext, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()

	var (
		wg           sync.WaitGroup
		err1, err2   error
		page1, page2 *feed.Page
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		page1, err1 = service.GetFeedPage(firstContext, followerID, 1, 10)
	}()

	// Wait until the build is in flight, then join it from a second caller
	// that never cancels.
	<-posts.entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		page2, err2 = service.GetFeedPage(context.Background(), followerID, 1, 10)
	}()

	time.Sleep(50 * time.Millisecond)
	cancelFirst()
	close(posts.release)
	wg.Wait()

	require.NoError(t, err2)
	require.Len(t, page2.Groups, 1)
	assert.Equal(t, followeeA, page2.Groups[0].FolloweeID)
	assert.Empty(t, page2.Warnings)

	// The first caller shares the same detached build, so it gets the page too.
	require.NoError(t, err1)
	require.Len(t, page1.Groups, 1)
}
