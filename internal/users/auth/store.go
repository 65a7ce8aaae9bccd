// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose email OR username matches the
		given login identifier.

		Parameters:
		  - context: context.Context
		  - login: string (Email address or username)

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures (including unique-constraint conflicts)
	*/
	Create(context context.Context, user *User) error
}
