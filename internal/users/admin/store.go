// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package admin implements the administrative user-management surface.

Every route in this package requires the admin role; the guard is applied at
the router level so individual handlers stay free of authorization logic.
*/
package admin

import (
	"context"

	"github.com/minhanhvo/plume/internal/users/auth"
)

// # Data Access

// UserAdminRepository defines the data access contract for administrative
// user management.
type UserAdminRepository interface {

	/*
		List returns one page of user accounts ordered by creation time
		descending, plus the total account count.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*auth.User: Page of accounts
		  - int: Total number of accounts
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*auth.User, int, error)

	/*
		Delete removes a user account permanently and returns the deleted row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.User: The account as it was before deletion
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) (*auth.User, error)
}
