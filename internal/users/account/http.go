// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhanhvo/plume/internal/platform/middleware"
	requestutil "github.com/minhanhvo/plume/internal/platform/request"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/internal/platform/validate"
	"github.com/minhanhvo/plume/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements user-scoped HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with user-scoped routes.
//
// # Endpoints
//   - GET /{id}/profile     : Public profile view.
//   - PUT /{id}             : Profile update (self or admin).
//   - GET /{id}/saved-posts : Paginated saved-post IDs (self or admin).
//   - PUT /{id}/saved-post  : Add/remove a saved post (self or admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/{id}/profile", handler.getProfile)

	// Self-or-admin endpoints: the route parameter names a user here, so the
	// guard may legitimately compare it against the subject.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSelfOrRole("id", sec.RoleAdmin))
		r.Put("/{id}", handler.updateProfile)
		r.Get("/{id}/saved-posts", handler.listSavedPosts)
		r.Put("/{id}/saved-post", handler.updateSavedPost)
	})

	return router
}

// # Request Payloads

type updateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
	Role   string  `json:"role"`
}

type updateSavedPostRequest struct {
	PostID string `json:"postId"`
}

/*
GetProfile returns the public profile of a user.

GET /api/v1/users/{id}/profile

Response:
  - 200: {user}: Public projection without password hash or role
  - 404: User not found
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	profile, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldUser: profile})
}

/*
UpdateProfile applies partial changes to the user's own profile.

PUT /api/v1/users/{id}

Description: Absent fields are left untouched. A payload asking for the admin
role is rejected before any write.

Request:
  - Body: updateProfileRequest (Name, Avatar, Bio, Role)

Response:
  - 200: {user}: Updated profile (password hash stripped)
  - 404: User not found
  - 422: Role elevation attempted
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		DisplayName: input.Name,
		AvatarURL:   input.Avatar,
		Bio:         input.Bio,
		Role:        input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldUser: user})
}

/*
ListSavedPosts returns one page of the user's saved-post IDs.

GET /api/v1/users/{id}/saved-posts?page=&limit=

Response:
  - 200: {count, total, pagination, saved_posts}
  - 404: User not found
*/
func (handler *Handler) listSavedPosts(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")
	params := pagination.FromRequest(request)

	ids, total, err := handler.accountService.ListSavedPosts(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, FieldSavedPosts, ids, len(ids), total, pagination.NewLinks(params, total))
}

/*
UpdateSavedPost adds or removes a post from the user's saved list.

PUT /api/v1/users/{id}/saved-post?action=add|remove

Description: Both directions are idempotent; repeating the same action on the
same post succeeds without changing the list.

Request:
  - Body: updateSavedPostRequest (PostID)

Response:
  - 200: {saved_posts}: The list after the mutation
  - 400: Missing postId or unknown action
  - 404: User not found
*/
func (handler *Handler) updateSavedPost(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")
	action := request.URL.Query().Get(FieldAction)

	var input updateSavedPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldPostID, input.PostID).
		UUID(FieldPostID, input.PostID).
		OneOf(FieldAction, action, ActionAdd, ActionRemove)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.accountService.UpdateSavedPost(request.Context(), userID, input.PostID, action)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldSavedPosts: saved})
}
