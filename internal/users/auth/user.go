// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package auth implements the user identity layer of the Plume platform.

It defines the core User entity and the logic for registration, login, and
bearer-token resolution.

# Architecture

This layer is the "Truth" of the system for identity. Entities defined here
have no external dependencies and encapsulate all business rules related to
who a user is and how they prove it.
*/
package auth

import (
	"time"

	"github.com/minhanhvo/plume/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Plume platform.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"name"`
	AvatarURL    string       `json:"avatar,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	Role         sec.UserRole `json:"role"`
	SavedPosts   []string     `json:"saved_posts"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldRole     = "role"
	FieldLogin    = "login"
	FieldToken    = "token"
)

// Validation bounds for registration input.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 8
)
