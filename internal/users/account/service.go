// Copyright (c) 2026 AGBR121. All rights reserved.

package account

import (
	"context"
	"log/slog"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
)

// Service exposes account directory operations to the HTTP layer and to
// other domain services.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an account [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetProfile returns the public profile of a user.
func (service *Service) GetProfile(context context.Context, id string) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, id).UUID(FieldUserID, id)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.FindByID(context, id)
}

// DisplayName resolves the display identity of a user.
func (service *Service) DisplayName(context context.Context, id string) (string, error) {
	return service.repo.DisplayName(context, id)
}
