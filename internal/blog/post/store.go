// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package post

import (
	"context"

	"github.com/minhanhvo/plume/pkg/query"
)

// Patch defines a sparse update to a post's mutable fields.
// Nil members leave the corresponding column untouched.
type Patch struct {
	Title    *string
	Content  *string
	Keywords []string
}

// # Post Data Access

// PostRepository defines the data access contract for blog posts.
type PostRepository interface {

	/*
		List returns one sorted page of posts plus the total post count.

		Parameters:
		  - context: context.Context
		  - sort: query.Sort (Whitelisted column and direction)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Post: Page of hydrated posts
		  - int: Total number of posts in the store
		  - error: Database retrieval failures
	*/
	List(context context.Context, sort query.Sort, limit, offset int) ([]*Post, int, error)

	/*
		FindByID returns the post with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		Create persists a brand-new post.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, post *Post) error

	/*
		Update applies a sparse patch to a post's mutable fields.

		Parameters:
		  - context: context.Context
		  - id: string
		  - patch: Patch

		Returns:
		  - *Post: The updated entity as stored
		  - error: apperr.NotFound or persistence failures
	*/
	Update(context context.Context, id string, patch Patch) (*Post, error)

	/*
		Delete removes a post permanently.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error

	/*
		Like atomically increments the post's like counter.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: The entity after the increment
		  - error: apperr.NotFound or persistence failures
	*/
	Like(context context.Context, id string) (*Post, error)

	/*
		AttachComment appends a comment ID to the post's reference list and
		increments the comment counter, in one atomic statement.

		Parameters:
		  - context: context.Context
		  - postID: string
		  - commentID: string

		Returns:
		  - *Post: The entity after the linkage
		  - error: apperr.NotFound or persistence failures
	*/
	AttachComment(context context.Context, postID, commentID string) (*Post, error)

	/*
		DetachComment removes a comment ID from the post's reference list and
		decrements the comment counter only if the ID was present.

		Parameters:
		  - context: context.Context
		  - postID: string
		  - commentID: string

		Returns:
		  - *Post: The entity after the unlink
		  - error: apperr.NotFound or persistence failures
	*/
	DetachComment(context context.Context, postID, commentID string) (*Post, error)

	/*
		CommentsWindow returns one page of the post's comment IDs plus the
		total comment count, preserving insertion order.

		Parameters:
		  - context: context.Context
		  - postID: string
		  - offset: int (Zero-based start index)
		  - limit: int

		Returns:
		  - []string: Comment IDs for this window
		  - int: Total number of comments on the post
		  - error: apperr.NotFound or retrieval failures
	*/
	CommentsWindow(context context.Context, postID string, offset, limit int) ([]string, int, error)
}

// # Cache Contract

// Cache is the read-through cache for single-post lookups.
//
// Implementations are best-effort: a cache failure must never fail the
// request, only fall back to storage.
type Cache interface {
	// Get returns the cached post and whether the lookup hit.
	Get(context context.Context, id string) (*Post, bool)

	// Set stores a post under its ID with the configured TTL.
	Set(context context.Context, post *Post)

	// Invalidate drops the cached entry for a post ID.
	Invalidate(context context.Context, id string)
}
