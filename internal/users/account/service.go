// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/users/auth"
	"github.com/minhanhvo/plume/pkg/pagination"
)

// # Service Layer

// Service orchestrates business logic for user profiles and saved posts.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the public identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *ProfileView: The public projection (no password hash, no role)
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*ProfileView, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return NewProfileView(user), nil
}

// UpdateProfileInput defines the requested profile changes.
//
// Role is carried only so the service can reject elevation attempts; it is
// never written to storage through this path.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
	Role        string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Rejects role self-elevation, then hands the sparse patch to the
repository which performs a single COALESCE-based update.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Unprocessable (role elevation), NotFound, or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {

	// Role elevation is never a self-service operation.
	if input.Role == "admin" {
		return nil, apperr.Unprocessable("You cannot update your role to admin")
	}

	user, err := service.accountRepository.UpdateProfile(context, userID, ProfilePatch{
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
		Bio:         input.Bio,
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

// # Saved Posts

/*
ListSavedPosts returns one page of the user's saved-post IDs.

Description: Pages over the denormalized saved_posts array in storage using
array slicing, preserving insertion order.

Parameters:
  - context: context.Context
  - userID: string
  - params: pagination.Params

Returns:
  - []string: Post IDs for this page
  - int: Total number of saved posts
  - error: NotFound or storage failures
*/
func (service *Service) ListSavedPosts(context context.Context, userID string, params pagination.Params) ([]string, int, error) {
	ids, total, err := service.accountRepository.SavedPostsWindow(context, userID, params.Offset(), params.Limit)
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

/*
UpdateSavedPost adds or removes a post from the user's saved list.

Description: Both directions are idempotent single-statement mutations. Adding
a post that is already saved or removing one that is not leaves the list
unchanged and still succeeds.

Parameters:
  - context: context.Context
  - userID: string
  - postID: string
  - action: string ("add" or "remove")

Returns:
  - []string: The saved list after the mutation
  - error: ValidationError (unknown action), NotFound, or storage failures
*/
func (service *Service) UpdateSavedPost(context context.Context, userID, postID, action string) ([]string, error) {
	var saved []string
	var err error

	switch action {
	case ActionAdd:
		saved, err = service.accountRepository.AddSavedPost(context, userID, postID)
	case ActionRemove:
		saved, err = service.accountRepository.RemoveSavedPost(context, userID, postID)
	default:
		return nil, apperr.ValidationError(fmt.Sprintf("Unknown action %q, expected add or remove", action))
	}

	if err != nil {
		return nil, err
	}

	service.logger.Info("user_saved_posts_updated",
		slog.String("user_id", userID),
		slog.String("post_id", postID),
		slog.String("action", action),
	)

	return saved, nil
}
