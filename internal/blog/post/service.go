// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package post

import (
	"context"
	"log/slog"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/pkg/keyword"
	"github.com/minhanhvo/plume/pkg/pagination"
	"github.com/minhanhvo/plume/pkg/query"
	"github.com/minhanhvo/plume/pkg/uuidv7"
)

// SortFields whitelists the sortable columns for the post listing.
//
// Keys are the wire-level sortField values, values the backing columns.
var SortFields = map[string]string{
	"createdAt":       "createdat",
	"updatedAt":       "updatedat",
	"title":           "title",
	"likes_amount":    "likes_amount",
	"comments_amount": "comments_amount",
}

// DefaultSortField orders listings by creation time unless asked otherwise.
const DefaultSortField = "createdAt"

// # Service Layer

// Service orchestrates business logic for blog posts.
type Service struct {
	postRepository PostRepository
	cache          Cache
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(postRepo PostRepository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		postRepository: postRepo,
		cache:          cache,
		logger:         logger,
	}
}

// # Discovery

/*
List returns one sorted page of posts.

Description: An entirely empty store is reported as NotFound; a page beyond
the end of a non-empty store returns an empty page with intact totals so the
client's pagination links stay correct.

Parameters:
  - context: context.Context
  - params: pagination.Params
  - sort: query.Sort

Returns:
  - []*Post: Page of posts
  - int: Total post count
  - error: NotFound (empty store) or storage failures
*/
func (service *Service) List(context context.Context, params pagination.Params, sort query.Sort) ([]*Post, int, error) {
	posts, total, err := service.postRepository.List(context, sort, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return nil, 0, apperr.NotFound("No posts found")
	}

	return posts, total, nil
}

/*
GetByID returns a single post, served read-through from the cache.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - *Post: Hydrated entity
  - error: NotFound or storage failures
*/
func (service *Service) GetByID(context context.Context, postID string) (*Post, error) {
	if cached, hit := service.cache.Get(context, postID); hit {
		return cached, nil
	}

	post, err := service.postRepository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, post)

	return post, nil
}

// # Lifecycle

// CreateInput holds the data required to publish a new post.
type CreateInput struct {
	Title    string
	Content  string
	Keywords []string
	AuthorID string
}

/*
Create publishes a new post.

Description: Keywords are normalized to lowercase ASCII and de-duplicated.
The author is always the authenticated subject, never request data.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Post: The created entity
  - error: Unprocessable if the post could not be persisted
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Post, error) {
	keywords := keyword.NormalizeAll(input.Keywords)
	if keywords == nil {
		keywords = []string{}
	}

	post := &Post{
		ID:           uuidv7.New(),
		Title:        input.Title,
		Content:      input.Content,
		AuthorID:     input.AuthorID,
		Keywords:     keywords,
		PostComments: []string{},
	}

	if err := service.postRepository.Create(context, post); err != nil {
		service.logger.Error("post_create_failed",
			slog.String("author_id", input.AuthorID),
			slog.String("error", err.Error()),
		)
		return nil, apperr.Unprocessable("Could not create the post")
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("author_id", post.AuthorID),
	)

	return post, nil
}

// UpdateInput holds the requested changes to a post.
type UpdateInput struct {
	Title    *string
	Content  *string
	Keywords []string
}

/*
Update applies partial changes to a post's mutable fields.

Parameters:
  - context: context.Context
  - postID: string
  - input: UpdateInput

Returns:
  - *Post: The updated entity
  - error: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, postID string, input UpdateInput) (*Post, error) {
	patch := Patch{
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Keywords != nil {
		patch.Keywords = keyword.NormalizeAll(input.Keywords)
		if patch.Keywords == nil {
			// An explicit empty list clears the keywords rather than
			// falling through COALESCE to the stored value.
			patch.Keywords = []string{}
		}
	}

	post, err := service.postRepository.Update(context, postID, patch)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, postID)

	return post, nil
}

/*
Delete removes a post permanently.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, postID string) error {
	if err := service.postRepository.Delete(context, postID); err != nil {
		return err
	}

	service.cache.Invalidate(context, postID)
	service.logger.Info("post_deleted", slog.String("post_id", postID))

	return nil
}

// # Engagement

/*
Like atomically increments a post's like counter.

Description: The increment happens inside the database, so concurrent likes
are never lost to a read-modify-write race.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - *Post: The entity after the increment
  - error: NotFound or storage failures
*/
func (service *Service) Like(context context.Context, postID string) (*Post, error) {
	post, err := service.postRepository.Like(context, postID)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, postID)

	return post, nil
}

/*
ListComments returns one page of a post's comment IDs.

Description: Pages over the denormalized post_comments list, preserving
insertion order.

Parameters:
  - context: context.Context
  - postID: string
  - params: pagination.Params

Returns:
  - []string: Comment IDs for this page
  - int: Total comments on the post
  - error: NotFound (post absent) or storage failures
*/
func (service *Service) ListComments(context context.Context, postID string, params pagination.Params) ([]string, int, error) {
	return service.postRepository.CommentsWindow(context, postID, params.Offset(), params.Limit)
}

// # Comment Linkage

// The comment service drives these as a continuation after its own mutation;
// both return the refreshed post so the API can answer with `{post}`.

// GetPost resolves a post for the comment workflow.
func (service *Service) GetPost(context context.Context, postID string) (*Post, error) {
	return service.GetByID(context, postID)
}

// AttachComment links a freshly created comment to its post.
func (service *Service) AttachComment(context context.Context, postID, commentID string) (*Post, error) {
	post, err := service.postRepository.AttachComment(context, postID, commentID)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, postID)

	return post, nil
}

// DetachComment unlinks a deleted comment from its post.
func (service *Service) DetachComment(context context.Context, postID, commentID string) (*Post, error) {
	post, err := service.postRepository.DetachComment(context, postID, commentID)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, postID)

	return post, nil
}
