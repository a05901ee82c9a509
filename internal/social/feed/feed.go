// Package feed assembles the followed-user feed: a page of per-followee
// post groups built by fanning out over the viewer's follow graph.
package feed

import (
	"context"

	"github.com/AGBR121/social-media-API/internal/social/post"
)

// FollowGraph is the slice of the follow store the feed needs.
type FollowGraph interface {
	ListFollowees(context context.Context, followerID string) ([]string, error)
}

// PostSource supplies the publicly visible posts of a single user.
type PostSource interface {
	ListPublicByOwner(context context.Context, ownerID string, skip, take int) ([]*post.Post, error)
}

// UserDirectory resolves a user ID to a display identity.
type UserDirectory interface {
	DisplayName(context context.Context, id string) (string, error)
}

// Group is one followee's slot in the page: their identity plus their most
// recent public posts, newest first.
type Group struct {
	FolloweeID string       `json:"followee_id"`
	Followee   string       `json:"followee"`
	Posts      []*post.Post `json:"posts"`
}

// Warning records a followee whose data could not be fully resolved while the
// rest of the page was still served.
type Warning struct {
	FolloweeID string `json:"followee_id"`
	Reason     string `json:"reason"`
}

// Page is an assembled feed page.
type Page struct {
	Follower string    `json:"follower"`
	Groups   []Group   `json:"groups"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Global field names for validation
const (
	FieldFollowerID = "follower_id"
	FieldPage       = "page"
	FieldLimit      = "limit"
)
