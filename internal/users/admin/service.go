// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package admin

import (
	"context"
	"log/slog"

	"github.com/minhanhvo/plume/internal/users/auth"
	"github.com/minhanhvo/plume/pkg/pagination"
)

// Service orchestrates administrative user management.
type Service struct {
	userRepository UserAdminRepository
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo UserAdminRepository, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		logger:         logger,
	}
}

/*
ListUsers returns one page of all registered accounts.

Description: Newest accounts first. No filtering; this is a back-office view.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*auth.User: Page of accounts (password hash never serialized)
  - int: Total account count
  - error: Storage failures
*/
func (service *Service) ListUsers(context context.Context, params pagination.Params) ([]*auth.User, int, error) {
	users, total, err := service.userRepository.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

/*
DeleteUser permanently removes a user account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The deleted account
  - error: NotFound or storage failures
*/
func (service *Service) DeleteUser(context context.Context, userID string) (*auth.User, error) {
	user, err := service.userRepository.Delete(context, userID)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("user_account_deleted_by_admin", slog.String("user_id", userID))

	return user, nil
}
