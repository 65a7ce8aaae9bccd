// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhanhvo/plume/internal/platform/middleware"
	requestutil "github.com/minhanhvo/plume/internal/platform/request"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/internal/platform/validate"
	"github.com/minhanhvo/plume/pkg/pagination"
	"github.com/minhanhvo/plume/pkg/query"
)

// # Definitions & Constructors

// Handler implements post-related HTTP endpoints.
type Handler struct {
	postService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] configured with post routes.
//
// # Endpoints
//   - GET    /              : Paginated, sortable listing (public).
//   - GET    /{id}          : Single post (public, cached).
//   - GET    /{id}/comments : Paginated comment IDs (public).
//   - POST   /{id}/like     : Like counter increment (authenticated).
//   - POST   /              : Publish (admin).
//   - PUT    /{id}          : Update (admin).
//   - DELETE /{id}          : Remove (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{id}", handler.getByID)
	router.Get("/{id}/comments", handler.listComments)

	// Any authenticated user can like a post.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{id}/like", handler.like)
	})

	// Post lifecycle is admin-only.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createPostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

type updatePostRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Keywords []string `json:"keywords"`
}

/*
List returns one page of posts.

GET /api/v1/posts?page=&limit=&sortField=&sortOrder=

Description: sortField is whitelisted (createdAt, updatedAt, title,
likes_amount, comments_amount); unknown fields fall back to createdAt.
sortOrder defaults to desc.

Response:
  - 200: {count, total, pagination, posts}
  - 404: The store holds no posts at all
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	sort := query.SortFromRequest(request, SortFields, DefaultSortField)

	posts, total, err := handler.postService.List(request.Context(), params, sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, FieldPosts, posts, len(posts), total, pagination.NewLinks(params, total))
}

/*
GetByID returns a single post.

GET /api/v1/posts/{id}

Response:
  - 200: {post}
  - 404: Post not found (also covers malformed IDs)
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	post, err := handler.postService.GetByID(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldPost: post})
}

/*
Create publishes a new post.

POST /api/v1/posts

Request:
  - Body: createPostRequest (Title, Content, Keywords)

Response:
  - 201: {post}
  - 400: Validation failure
  - 401: Missing or insufficient credentials
  - 422: The post could not be persisted
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	subject, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLength).
		Required(FieldContent, input.Content)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.postService.Create(request.Context(), CreateInput{
		Title:    input.Title,
		Content:  input.Content,
		Keywords: input.Keywords,
		AuthorID: subject.ID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{FieldPost: post})
}

/*
Update applies partial changes to a post.

PUT /api/v1/posts/{id}

Request:
  - Body: updatePostRequest (Title, Content, Keywords; absent fields kept)

Response:
  - 200: {post}
  - 400: Validation failure
  - 404: Post not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	var input updatePostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).
			MaxLen(FieldTitle, *input.Title, TitleMaxLength)
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.postService.Update(request.Context(), postID, UpdateInput{
		Title:    input.Title,
		Content:  input.Content,
		Keywords: input.Keywords,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldPost: post})
}

/*
Delete removes a post permanently.

DELETE /api/v1/posts/{id}

Response:
  - 200: {msg: "Post deleted successfully"}
  - 404: Post not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	if err := handler.postService.Delete(request.Context(), postID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldMsg: "Post deleted successfully"})
}

/*
Like increments a post's like counter.

POST /api/v1/posts/{id}/like

Response:
  - 200: {post}: The post after the increment
  - 401: Unauthenticated
  - 404: Post not found
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	post, err := handler.postService.Like(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldPost: post})
}

/*
ListComments returns one page of a post's comment IDs.

GET /api/v1/posts/{id}/comments?page=&limit=

Response:
  - 200: {count, total, pagination, comments}
  - 404: Post not found
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")
	params := pagination.FromRequest(request)

	ids, total, err := handler.postService.ListComments(request.Context(), postID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, FieldComments, ids, len(ids), total, pagination.NewLinks(params, total))
}
