// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package comment

import (
	"context"
	"log/slog"

	"github.com/minhanhvo/plume/internal/blog/post"
	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates business logic for comments.
type Service struct {
	commentRepository CommentRepository
	postLinker        PostLinker
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(commentRepo CommentRepository, linker PostLinker, logger *slog.Logger) *Service {
	return &Service{
		commentRepository: commentRepo,
		postLinker:        linker,
		logger:            logger,
	}
}

/*
Create publishes a new comment on a post and links it.

Description: Resolves the post first so a comment can never target a missing
post. The author is the authenticated subject, never request data. After the
insert, control passes to the post linkage which maintains the denormalized
list and counter and supplies the refreshed post for the response.

Parameters:
  - context: context.Context
  - subject: *sec.Subject
  - postID: string
  - content: string

Returns:
  - *post.Post: The post after the linkage
  - error: NotFound (post absent), Unprocessable (insert failed), or storage failures
*/
func (service *Service) Create(context context.Context, subject *sec.Subject, postID, content string) (*post.Post, error) {
	if _, err := service.postLinker.GetPost(context, postID); err != nil {
		return nil, err
	}

	newComment := &Comment{
		ID:       uuidv7.New(),
		Content:  content,
		AuthorID: subject.ID,
		PostID:   postID,
	}

	if err := service.commentRepository.Create(context, newComment); err != nil {
		service.logger.Error("comment_create_failed",
			slog.String("post_id", postID),
			slog.String("author_id", subject.ID),
			slog.String("error", err.Error()),
		)
		return nil, apperr.Unprocessable("Could not create the comment")
	}

	linkedPost, err := service.postLinker.AttachComment(context, postID, newComment.ID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", newComment.ID),
		slog.String("post_id", postID),
	)

	return linkedPost, nil
}

/*
GetByID returns a single comment.

Parameters:
  - context: context.Context
  - commentID: string

Returns:
  - *Comment: Hydrated entity
  - error: NotFound or storage failures
*/
func (service *Service) GetByID(context context.Context, commentID string) (*Comment, error) {
	return service.commentRepository.FindByID(context, commentID)
}

/*
Update replaces the content of an existing comment.

Description: Resolution happens before authorization so an absent comment is
reported as NotFound rather than Unauthorized. Ownership is checked against
the stored author; admins may edit any comment.

Parameters:
  - context: context.Context
  - subject: *sec.Subject
  - commentID: string
  - content: string

Returns:
  - *Comment: The updated comment
  - error: NotFound, Unauthorized (not owner or admin), or storage failures
*/
func (service *Service) Update(context context.Context, subject *sec.Subject, commentID, content string) (*Comment, error) {
	existing, err := service.commentRepository.FindByID(context, commentID)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != subject.ID && !subject.Role.AtLeast(sec.RoleAdmin) {
		return nil, apperr.Unauthorized("You are not authorized to change this comment")
	}

	updated, err := service.commentRepository.UpdateContent(context, commentID, content)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

/*
Delete removes a comment and unlinks it from its post.

Description: Same ownership rule as Update. After the delete, the post
linkage drops the reference and guarded-decrements the counter, and the
refreshed post becomes the response.

Parameters:
  - context: context.Context
  - subject: *sec.Subject
  - commentID: string

Returns:
  - *post.Post: The post after the unlink
  - error: NotFound, Unauthorized, or storage failures
*/
func (service *Service) Delete(context context.Context, subject *sec.Subject, commentID string) (*post.Post, error) {
	existing, err := service.commentRepository.FindByID(context, commentID)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != subject.ID && !subject.Role.AtLeast(sec.RoleAdmin) {
		return nil, apperr.Unauthorized("You are not authorized to delete this comment")
	}

	if err := service.commentRepository.Delete(context, commentID); err != nil {
		return nil, err
	}

	unlinkedPost, err := service.postLinker.DetachComment(context, existing.PostID, commentID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_deleted",
		slog.String("comment_id", commentID),
		slog.String("post_id", existing.PostID),
	)

	return unlinkedPost, nil
}
