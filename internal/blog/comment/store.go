// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package comment

import (
	"context"
)

// # Comment Data Access

// CommentRepository defines the data access contract for comments.
type CommentRepository interface {

	/*
		FindByID returns the comment with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Comment: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Comment, error)

	/*
		Create persists a brand-new comment.

		Parameters:
		  - context: context.Context
		  - comment: *Comment

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, comment *Comment) error

	/*
		UpdateContent replaces the comment's content. Author and post linkage
		are immutable after insert.

		Parameters:
		  - context: context.Context
		  - id: string
		  - content: string

		Returns:
		  - *Comment: The updated entity as stored
		  - error: apperr.NotFound or persistence failures
	*/
	UpdateContent(context context.Context, id, content string) (*Comment, error)

	/*
		Delete removes a comment permanently.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error
}
