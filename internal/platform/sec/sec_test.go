// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/platform/sec"
)

const testSecret = "test-secret-at-least-32-bytes-long!!"

/*
TestNewTokenService verifies the empty-secret guard.
*/
func TestNewTokenService(t *testing.T) {
	_, err := sec.NewTokenService("", "plume.app", time.Hour)
	assert.Error(t, err)

	service, err := sec.NewTokenService(testSecret, "plume.app", time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, service)
}

/*
TestTokenService_RoundTrip verifies that a generated token verifies and that
its claims carry the embedded identity.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "plume.app", time.Hour)
	require.NoError(t, err)

	// 1. Generate a token for a known user.
	token, err := service.GenerateAccessToken("user-1", "minh", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 2. Verify it and inspect the claims.
	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "minh", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "plume.app", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

/*
TestTokenService_WrongSecret verifies tokens signed with another key are
rejected.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService(testSecret, "plume.app", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("another-secret-entirely-1234567890", "plume.app", time.Hour)
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken("user-1", "minh", "user")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Expired verifies an expired token fails verification.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "plume.app", -time.Minute)
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "minh", "user")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies malformed input fails cleanly.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "plume.app", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "hello world"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestUserRole_AtLeast verifies the role hierarchy predicate.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_user", sec.RoleAdmin, sec.RoleUser, true},
		{"user_meets_user", sec.RoleUser, sec.RoleUser, true},
		{"user_below_admin", sec.RoleUser, sec.RoleAdmin, false},
		{"unknown_below_user", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestPasswordHashing verifies the bcrypt round-trip and rejection of wrong
passwords.
*/
func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The hash must never equal the plain text.
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash("correct horse battery staple", "not-a-hash"))
}
