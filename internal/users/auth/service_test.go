// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/internal/users/auth"
)

// # Test Doubles

// fakeUserRepository is an in-memory UserRepository backed by maps.
type fakeUserRepository struct {
	byID    map[string]*auth.User
	byLogin map[string]*auth.User

	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    map[string]*auth.User{},
		byLogin: map[string]*auth.User{},
	}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByLogin(_ context.Context, login string) (*auth.User, error) {
	user, ok := f.byLogin[login]
	if !ok {
		return nil, apperr.NotFound("No user with email or username " + login + " found")
	}
	return user, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[user.ID] = user
	f.byLogin[user.Username] = user
	f.byLogin[user.Email] = user
	return nil
}

func (f *fakeUserRepository) seed(user *auth.User) {
	f.byID[user.ID] = user
	f.byLogin[user.Username] = user
	f.byLogin[user.Email] = user
}

// fakeTokenProvider issues predictable tokens and verifies by map lookup.
type fakeTokenProvider struct {
	issued    map[string]*sec.AuthClaims
	verifyErr error
}

func newFakeTokenProvider() *fakeTokenProvider {
	return &fakeTokenProvider{issued: map[string]*sec.AuthClaims{}}
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, username, role string) (string, error) {
	token := "token-for-" + userID
	f.issued[token] = &sec.AuthClaims{UserID: userID, Username: username, Role: role}
	return token, nil
}

func (f *fakeTokenProvider) VerifyToken(tokenString string) (*sec.AuthClaims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	claims, ok := f.issued[tokenString]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

// # Registration

/*
TestService_Register verifies enrollment creates a persisted user with a
hashed password and returns a fresh session token.
*/
func TestService_Register(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := newFakeTokenProvider()
	service := auth.NewService(repo, tokens)

	creds, err := service.Register(context.Background(), auth.RegisterInput{
		Username:    "minh",
		Email:       "minh@example.com",
		Password:    "super-secret",
		DisplayName: "Minh Anh",
	})
	require.NoError(t, err)
	require.NotNil(t, creds)

	// 1. The session token names the new user.
	assert.Equal(t, "Minh Anh", creds.Name)
	assert.NotEmpty(t, creds.Token)

	// 2. The user is persisted with a hashed password and the default role.
	stored, err := repo.FindByLogin(context.Background(), "minh")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, stored.Role)
	assert.NotEqual(t, "super-secret", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("super-secret", stored.PasswordHash))
	assert.Equal(t, []string{}, stored.SavedPosts)
}

/*
TestService_Register_AdminRejected verifies admin self-enrollment fails with
401 before any persistence happens.
*/
func TestService_Register_AdminRejected(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, newFakeTokenProvider())

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "super-secret",
		Role:     "admin",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
	assert.Equal(t, "You cannot register as admin", appErr.Message)
	assert.Empty(t, repo.byID)
}

/*
TestService_Register_DuplicateSurfaces verifies repository conflicts pass
through unchanged.
*/
func TestService_Register_DuplicateSurfaces(t *testing.T) {
	repo := newFakeUserRepository()
	repo.createErr = apperr.Conflict("Duplicate value entered for username field, please choose another value")
	service := auth.NewService(repo, newFakeTokenProvider())

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@example.com",
		Password: "super-secret",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

// # Login

/*
TestService_Login verifies the unknown-identity and bad-password outcomes are
distinguishable, and that a correct login issues a token.
*/
func TestService_Login(t *testing.T) {
	hash, err := sec.HashPassword("correct-password")
	require.NoError(t, err)

	repo := newFakeUserRepository()
	repo.seed(&auth.User{
		ID:           "user-1",
		Username:     "minh",
		Email:        "minh@example.com",
		PasswordHash: hash,
		DisplayName:  "Minh Anh",
		Role:         sec.RoleUser,
	})
	service := auth.NewService(repo, newFakeTokenProvider())

	tests := []struct {
		name       string
		login      string
		password   string
		httpStatus int
		message    string
	}{
		{"by_username", "minh", "correct-password", 0, ""},
		{"by_email", "minh@example.com", "correct-password", 0, ""},
		{"unknown_identity", "ghost", "correct-password", 404, "No user with email or username ghost found"},
		{"wrong_password", "minh", "wrong-password", 401, "Incorrect Password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := service.Login(context.Background(), auth.LoginInput{
				Login:    tt.login,
				Password: tt.password,
			})

			if tt.httpStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, "Minh Anh", creds.Name)
				assert.NotEmpty(t, creds.Token)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

// # Subject Resolution

/*
TestService_ResolveSubject verifies token resolution re-reads the account so
the subject carries the live role, and that deleted accounts fail cleanly.
*/
func TestService_ResolveSubject(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := newFakeTokenProvider()
	service := auth.NewService(repo, tokens)

	repo.seed(&auth.User{
		ID:          "user-1",
		Username:    "minh",
		DisplayName: "Minh Anh",
		Role:        sec.RoleUser,
	})

	token, err := tokens.GenerateAccessToken("user-1", "minh", "user")
	require.NoError(t, err)

	// 1. A valid token resolves to a live subject.
	subject, err := service.ResolveSubject(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject.ID)
	assert.Equal(t, "Minh Anh", subject.Name)
	assert.Equal(t, sec.RoleUser, subject.Role)

	// 2. The role comes from storage, not the token snapshot.
	repo.byID["user-1"].Role = sec.RoleAdmin
	subject, err = service.ResolveSubject(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, subject.Role)

	// 3. A deleted account invalidates an otherwise valid token.
	delete(repo.byID, "user-1")
	_, err = service.ResolveSubject(context.Background(), token)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
	assert.Equal(t, "Unauthenticated", appErr.Message)

	// 4. A failed verification is indistinguishable from a missing account.
	tokens.verifyErr = errors.New("expired")
	_, err = service.ResolveSubject(context.Background(), token)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Unauthenticated", appErr.Message)
}
