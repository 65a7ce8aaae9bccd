// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/internal/users/account"
	"github.com/minhanhvo/plume/internal/users/auth"
	"github.com/minhanhvo/plume/pkg/pagination"
)

// # Test Doubles

// fakeAccountRepository is an in-memory AccountRepository with idempotent
// saved-post mutations, mirroring the storage semantics.
type fakeAccountRepository struct {
	users map[string]*auth.User
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{users: map[string]*auth.User{}}
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (f *fakeAccountRepository) UpdateProfile(_ context.Context, userID string, patch account.ProfilePatch) (*auth.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	return user, nil
}

func (f *fakeAccountRepository) SavedPostsWindow(_ context.Context, userID string, offset, limit int) ([]string, int, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, 0, apperr.NotFound("User not found")
	}

	total := len(user.SavedPosts)
	window := []string{}
	for i := offset; i < total && i < offset+limit; i++ {
		window = append(window, user.SavedPosts[i])
	}
	return window, total, nil
}

func (f *fakeAccountRepository) AddSavedPost(_ context.Context, userID, postID string) ([]string, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	for _, saved := range user.SavedPosts {
		if saved == postID {
			return user.SavedPosts, nil
		}
	}
	user.SavedPosts = append(user.SavedPosts, postID)
	return user.SavedPosts, nil
}

func (f *fakeAccountRepository) RemoveSavedPost(_ context.Context, userID, postID string) ([]string, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	kept := []string{}
	for _, saved := range user.SavedPosts {
		if saved != postID {
			kept = append(kept, saved)
		}
	}
	user.SavedPosts = kept
	return user.SavedPosts, nil
}

func newTestService(repo *fakeAccountRepository) *account.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(repo, logger)
}

func seedUser(repo *fakeAccountRepository) *auth.User {
	user := &auth.User{
		ID:           "user-1",
		Username:     "minh",
		Email:        "minh@example.com",
		PasswordHash: "$2a$10$secret",
		DisplayName:  "Minh Anh",
		Role:         sec.RoleUser,
		SavedPosts:   []string{},
	}
	repo.users[user.ID] = user
	return user
}

// # Profiles

/*
TestService_GetProfile verifies the public projection omits the password hash
and the role.
*/
func TestService_GetProfile(t *testing.T) {
	repo := newFakeAccountRepository()
	seedUser(repo)
	service := newTestService(repo)

	profile, err := service.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "minh", profile.Username)
	assert.Equal(t, "Minh Anh", profile.Name)

	_, err = service.GetProfile(context.Background(), "ghost")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestService_UpdateProfile verifies sparse patching and the role-elevation
rejection.
*/
func TestService_UpdateProfile(t *testing.T) {
	repo := newFakeAccountRepository()
	seedUser(repo)
	service := newTestService(repo)

	// 1. Only the provided fields change.
	newBio := "Gopher"
	updated, err := service.UpdateProfile(context.Background(), "user-1", account.UpdateProfileInput{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", updated.Bio)
	assert.Equal(t, "Minh Anh", updated.DisplayName)

	// 2. Any attempt to set role=admin fails before touching storage.
	name := "Eve"
	_, err = service.UpdateProfile(context.Background(), "user-1", account.UpdateProfileInput{
		DisplayName: &name,
		Role:        "admin",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.HTTPStatus)
	assert.Equal(t, "You cannot update your role to admin", appErr.Message)
	assert.Equal(t, "Minh Anh", repo.users["user-1"].DisplayName)

	// 3. Unknown users surface NotFound.
	_, err = service.UpdateProfile(context.Background(), "ghost", account.UpdateProfileInput{Bio: &newBio})
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

// # Saved Posts

/*
TestService_UpdateSavedPost verifies the action selector and the idempotency
of both directions.
*/
func TestService_UpdateSavedPost(t *testing.T) {
	repo := newFakeAccountRepository()
	seedUser(repo)
	service := newTestService(repo)

	// 1. Adding appends once; repeating is a no-op.
	saved, err := service.UpdateSavedPost(context.Background(), "user-1", "post-1", account.ActionAdd)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, saved)

	saved, err = service.UpdateSavedPost(context.Background(), "user-1", "post-1", account.ActionAdd)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, saved)

	// 2. Removing drops the ID; repeating is a no-op.
	saved, err = service.UpdateSavedPost(context.Background(), "user-1", "post-1", account.ActionRemove)
	require.NoError(t, err)
	assert.Empty(t, saved)

	saved, err = service.UpdateSavedPost(context.Background(), "user-1", "post-1", account.ActionRemove)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// 3. An unknown action is a validation error with the exact message.
	_, err = service.UpdateSavedPost(context.Background(), "user-1", "post-1", "toggle")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, `Unknown action "toggle", expected add or remove`, appErr.Message)
}

/*
TestService_ListSavedPosts verifies windowed paging over the saved list.
*/
func TestService_ListSavedPosts(t *testing.T) {
	repo := newFakeAccountRepository()
	user := seedUser(repo)
	user.SavedPosts = []string{"p1", "p2", "p3", "p4", "p5"}
	service := newTestService(repo)

	window, total, err := service.ListSavedPosts(context.Background(), "user-1", pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p4"}, window)
	assert.Equal(t, 5, total)

	// A window past the end is empty but keeps the total.
	window, total, err = service.ListSavedPosts(context.Background(), "user-1", pagination.Params{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, window)
	assert.Equal(t, 5, total)
}
