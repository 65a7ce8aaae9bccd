// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying session tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string) (string, error)

	// VerifyToken checks signature and expiry and returns the embedded claims.
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// Credentials represents a successfully established login identity.
type Credentials struct {
	Name  string
	Token string
	User  *User
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new member and immediately issues a session token so
the client can act as the new user without a second login round-trip.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Credentials: Display name plus a fresh session token
  - error: Unauthorized (admin self-enrollment), Conflict, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Credentials, error) {

	// Nobody enrolls themselves as admin. Elevation happens out-of-band.
	if input.Role != "" && input.Role != string(sec.RoleUser) {
		return nil, apperr.Unauthorized("You cannot register as admin")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         sec.RoleUser,
		SavedPosts:   []string{},
	}

	// Persist the user. Duplicate username/email surfaces as a Conflict
	// naming the offending field via the dberr mapping in the repository.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Credentials{Name: user.DisplayName, Token: token, User: user}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

/*
Login validates user credentials and issues a session token.

Description: Resolves the account by email or username in a single lookup,
performs constant-time password comparison, and signs a fresh JWT.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Credentials: Display name plus the signed session token
  - error: NotFound (unknown identity), Unauthorized (bad password), or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Credentials, error) {

	// Flexible login: a single lookup matches either email or username.
	// An unknown identity is reported as NotFound, distinct from a bad password.
	user, err := service.userRepository.FindByLogin(context, input.Login)
	if err != nil {
		return nil, err
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Incorrect Password")
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Credentials{Name: user.DisplayName, Token: token, User: user}, nil
}

// # Subject Resolution

/*
ResolveSubject turns a raw bearer token into a live request subject.

Description: Verifies signature and expiry, then re-reads the account from
storage. The existence check happens before any field access, so a deleted
account fails cleanly with Unauthorized. The role comes from storage, not
from the token snapshot, so demotions take effect before token expiry.

Parameters:
  - context: context.Context
  - tokenString: string (Raw JWT from the Authorization header)

Returns:
  - *sec.Subject: The live authenticated identity
  - error: apperr.Unauthorized for any verification or resolution failure
*/
func (service *Service) ResolveSubject(context context.Context, tokenString string) (*sec.Subject, error) {
	claims, err := service.tokenProvider.VerifyToken(tokenString)
	if err != nil {
		return nil, apperr.Unauthorized("Unauthenticated")
	}

	user, err := service.userRepository.FindByID(context, claims.UserID)
	if err != nil || user == nil {
		return nil, apperr.Unauthorized("Unauthenticated")
	}

	return &sec.Subject{
		ID:   user.ID,
		Name: user.DisplayName,
		Role: user.Role,
	}, nil
}
