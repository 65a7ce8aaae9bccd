// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhanhvo/plume/internal/platform/middleware"
	requestutil "github.com/minhanhvo/plume/internal/platform/request"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements comment-related HTTP endpoints.
type Handler struct {
	commentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{commentService: service}
}

// Routes returns a [chi.Router] configured with comment routes.
//
// # Endpoints
//   - GET    /{id}       : Single comment (public).
//   - POST   /{postId}   : Create on a post (authenticated).
//   - PUT    /{id}       : Edit content (author or admin).
//   - DELETE /{id}       : Remove (author or admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/{id}", handler.getByID)

	// Authenticated endpoints. Ownership of existing comments is enforced in
	// the service against the stored author, not against route parameters.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{postId}", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type commentRequest struct {
	Content string `json:"content"`
}

/*
Create publishes a new comment on a post.

POST /api/v1/comments/{postId}

Request:
  - Body: commentRequest (Content)

Response:
  - 200: {post}: The post with its refreshed comment list and counter
  - 400: Missing content
  - 401: Unauthenticated
  - 404: Post not found
  - 422: The comment could not be persisted
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	subject, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := requestutil.ID(request, "postId")

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	linkedPost, err := handler.commentService.Create(request.Context(), subject, postID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldPost: linkedPost})
}

/*
GetByID returns a single comment.

GET /api/v1/comments/{id}

Response:
  - 200: {comment}
  - 404: Comment not found
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	commentID := requestutil.ID(request, "id")

	found, err := handler.commentService.GetByID(request.Context(), commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldComment: found})
}

/*
Update replaces the content of a comment.

PUT /api/v1/comments/{id}

Request:
  - Body: commentRequest (Content)

Response:
  - 200: {updatedComment}
  - 400: Missing content
  - 401: Not the author and not an admin
  - 404: Comment not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	subject, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID := requestutil.ID(request, "id")

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.commentService.Update(request.Context(), subject, commentID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldUpdatedComment: updated})
}

/*
Delete removes a comment and unlinks it from its post.

DELETE /api/v1/comments/{id}

Response:
  - 200: {post}: The post after the unlink
  - 401: Not the author and not an admin
  - 404: Comment not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	subject, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID := requestutil.ID(request, "id")

	unlinkedPost, err := handler.commentService.Delete(request.Context(), subject, commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldPost: unlinkedPost})
}
