package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
	"github.com/AGBR121/social-media-API/internal/platform/constants"
	"github.com/AGBR121/social-media-API/internal/platform/validate"
)

// Service builds feed pages. The follow graph is the page skeleton: losing it
// fails the whole request, while any single followee's data is optional and
// degrades to a warning.
type Service struct {
	follows   FollowGraph
	posts     PostSource
	directory UserDirectory
	cache     *PageCache
	flight    singleflight.Group
	logger    *slog.Logger
}

// NewService wires a feed service. cache may be nil, in which case every page
// is built from the stores.
func NewService(follows FollowGraph, posts PostSource, directory UserDirectory, cache *PageCache, logger *slog.Logger) *Service {
	return &Service{
		follows:   follows,
		posts:     posts,
		directory: directory,
		cache:     cache,
		logger:    logger,
	}
}

// GetFeedPage assembles one page of the follower's feed.
//
// Each followee is queried for their own window of public posts: page and
// limit slice every followee's timeline independently, so page 2 shows the
// second-newest posts of each followed user rather than a global cursor.
func (service *Service) GetFeedPage(context context.Context, followerID string, page, limit int) (*Page, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFollowerID, followerID).UUID(FieldFollowerID, followerID)
	validator.Min(FieldPage, page, 1)
	validator.Min(FieldLimit, limit, 1)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if service.cache != nil {
		if cached, ok := service.cache.Get(context, followerID, page, limit); ok {
			return cached, nil
		}
	}

	key := fmt.Sprintf("%s:%d:%d", followerID, page, limit)
	built, err, _ := service.flight.Do(key, func() (any, error) {
		return service.buildPage(context, followerID, page, limit)
	})
	if err != nil {
		return nil, err
	}

	result := built.(*Page)
	if service.cache != nil && len(result.Warnings) == 0 {
		service.cache.Set(context, result, page, limit)
	}
	return result, nil
}

func (service *Service) buildPage(caller context.Context, followerID string, page, limit int) (*Page, error) {
	// Singleflight shares one build between every caller asking for this
	// page, so the build must not die with whichever caller started it. It
	// runs detached, under its own deadline.
	parent, cancel := context.WithTimeout(context.WithoutCancel(caller), constants.FeedBuildTimeout)
	defer cancel()

	followees, err := service.follows.ListFollowees(parent, followerID)
	if err != nil {
		service.logger.Error("feed_follow_graph_failed",
			slog.String("follower_id", followerID), slog.Any("error", err))
		return nil, apperr.ServiceUnavailable("Feed is temporarily unavailable", err)
	}

	result := &Page{Follower: followerID, Groups: []Group{}}
	if len(followees) == 0 {
		return result, nil
	}

	skip := (page - 1) * limit

	var (
		mutex    sync.Mutex
		groups   = make([]*Group, len(followees))
		warnings []Warning
	)
	warn := func(followeeID, reason string) {
		mutex.Lock()
		warnings = append(warnings, Warning{FolloweeID: followeeID, Reason: reason})
		mutex.Unlock()
	}

	workers := &errgroup.Group{}
	workers.SetLimit(min(len(followees), constants.FeedMaxFanOut))

	for index, followeeID := range followees {
		index, followeeID := index, followeeID
		workers.Go(func() error {
			queryContext, cancel := context.WithTimeout(parent, constants.FeedFolloweeQueryTimeout)
			defer cancel()

			posts, err := service.posts.ListPublicByOwner(queryContext, followeeID, skip, limit)
			if err != nil {
				warn(followeeID, "posts unavailable")
				service.logger.Warn("feed_followee_query_failed",
					slog.String("followee_id", followeeID), slog.Any("error", err))
				return nil
			}

			group := &Group{FolloweeID: followeeID, Posts: posts}
			name, err := service.directory.DisplayName(queryContext, followeeID)
			if err != nil {
				warn(followeeID, "display name unavailable")
			} else {
				group.Followee = name
			}

			groups[index] = group
			return nil
		})
	}

	// Merge starts only after every worker has settled.
	_ = workers.Wait()

	for _, group := range groups {
		if group != nil {
			result.Groups = append(result.Groups, *group)
		}
	}
	sortGroups(result.Groups)
	result.Warnings = warnings

	service.logger.Info("feed_page_built",
		slog.String("follower_id", followerID),
		slog.Int("page", page),
		slog.Int("groups", len(result.Groups)),
		slog.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// sortGroups orders groups by the freshness of their newest post, pushing
// followees with no posts in this window to the back. Ties fall through to
// followee ID so the order is stable across rebuilds.
func sortGroups(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		left, right := groups[i], groups[j]
		leftEmpty, rightEmpty := len(left.Posts) == 0, len(right.Posts) == 0

		if leftEmpty != rightEmpty {
			return rightEmpty
		}
		if !leftEmpty {
			leftAt, rightAt := left.Posts[0].UpdatedAt, right.Posts[0].UpdatedAt
			if !leftAt.Equal(rightAt) {
				return leftAt.After(rightAt)
			}
		}
		return left.FolloweeID < right.FolloweeID
	})
}
