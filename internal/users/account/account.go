// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package account handles user profile management and saved-post lists.

It provides functionalities for viewing public profiles, updating identity
data, and curating the per-user list of bookmarked posts.

# Architecture

  - Entities: ProfileView (public DTO).
  - Domain: This package depends on the auth package for the User entity.
  - Storage: Saved-post mutations are single-statement atomic array updates.
*/
package account

import (
	"context"
	"time"

	"github.com/minhanhvo/plume/internal/users/auth"
)

// # Domain Entities

// ProfileView is the public projection of a user account.
// It omits the password hash and the role for transport.
type ProfileView struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	SavedPosts []string  `json:"saved_posts"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProfileView maps a full user entity onto its public projection.
func NewProfileView(user *auth.User) *ProfileView {
	return &ProfileView{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.DisplayName,
		Avatar:     user.AvatarURL,
		Bio:        user.Bio,
		SavedPosts: user.SavedPosts,
		CreatedAt:  user.CreatedAt,
	}
}

// # Field Identifiers

const (
	FieldUser       = "user"
	FieldSavedPosts = "saved_posts"
	FieldAction     = "action"
	FieldPostID     = "postId"
	FieldName       = "name"
	FieldAvatar     = "avatar"
	FieldBio        = "bio"
	FieldRole       = "role"
)

// Saved-post actions accepted by the update endpoint.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		UpdateProfile applies a partial update to the mutable profile fields.
		Nil pointers leave the corresponding column untouched.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - input: ProfilePatch

		Returns:
		  - *auth.User: The updated entity as stored
		  - error: apperr.NotFound or storage failures
	*/
	UpdateProfile(context context.Context, userID string, input ProfilePatch) (*auth.User, error)

	/*
		SavedPostsWindow returns one page of the user's saved-post IDs plus
		the total list length.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - offset: int (Zero-based start index)
		  - limit: int (Window size)

		Returns:
		  - []string: Post IDs in insertion order
		  - int: Total number of saved posts
		  - error: apperr.NotFound or storage failures
	*/
	SavedPostsWindow(context context.Context, userID string, offset, limit int) ([]string, int, error)

	/*
		AddSavedPost appends a post ID to the user's saved list unless it is
		already present. The operation is a single atomic statement.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - postID: string

		Returns:
		  - []string: The saved list after the mutation
		  - error: apperr.NotFound or storage failures
	*/
	AddSavedPost(context context.Context, userID, postID string) ([]string, error)

	/*
		RemoveSavedPost removes every occurrence of a post ID from the user's
		saved list. Removing an absent ID is a no-op.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - postID: string

		Returns:
		  - []string: The saved list after the mutation
		  - error: apperr.NotFound or storage failures
	*/
	RemoveSavedPost(context context.Context, userID, postID string) ([]string, error)
}

// ProfilePatch defines the mutable subset of user profile fields.
type ProfilePatch struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}
