// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package comment implements the comment domain of the Plume platform.

Comments belong to exactly one post. Creating or deleting a comment hands
control to the post linkage as a continuation, which maintains the post's
denormalized comment list and counter and supplies the refreshed post for
the response.

# Authorization

Ownership is derived from the stored author of the comment, never from route
parameters: the author or an admin may change or remove it.
*/
package comment

import (
	"context"
	"time"

	"github.com/minhanhvo/plume/internal/blog/post"
)

// # Domain Entities

// Comment represents a reader's comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldPost           = "post"
	FieldComment        = "comment"
	FieldUpdatedComment = "updatedComment"
	FieldContent        = "content"
)

// # Linkage Contract

// PostLinker is the post-side half of the comment workflow.
//
// The comment service calls it after its own mutation succeeds; the linker
// keeps the post's comment list and counter consistent and returns the
// refreshed post. It is implemented by the post service.
type PostLinker interface {
	// GetPost resolves the target post before a comment is created.
	GetPost(context context.Context, postID string) (*post.Post, error)

	// AttachComment links a new comment to its post.
	AttachComment(context context.Context, postID, commentID string) (*post.Post, error)

	// DetachComment unlinks a removed comment from its post.
	DetachComment(context context.Context, postID, commentID string) (*post.Post, error)
}
