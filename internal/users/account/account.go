// Copyright (c) 2026 AGBR121. All rights reserved.

/*
Package account manages registered users and their public identity.

It is the directory other domains consult to resolve a user's display
identity — most importantly the feed aggregator, which attaches the
display name of every followed user to its feed group.

# Architecture

  - Entities: User.
  - Storage: Repository interface + PostgreSQL implementation.
  - Identity lifecycle (registration, credentials) lives in a separate
    identity provider and is out of scope for this service.
*/
package account

import (
	"context"
	"time"
)

// # Domain Entities

// User represents a registered member of the platform.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation in the account domain.
const (
	FieldUserID      = "user_id"
	FieldUsername    = "username"
	FieldDisplayName = "display_name"
)

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		DisplayName resolves the display identity of a user.

		Description: Falls back to the username when no display name is set.
		Returns apperr.NotFound when the account no longer exists (deleted user).

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - string: Display name
		  - error: apperr.NotFound or storage failures
	*/
	DisplayName(context context.Context, id string) (string, error)
}
