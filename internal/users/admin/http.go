// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhanhvo/plume/internal/platform/middleware"
	requestutil "github.com/minhanhvo/plume/internal/platform/request"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/pkg/pagination"
)

const (
	fieldUsers = "users"
	fieldUser  = "user"
)

// Handler implements administrative HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] with the admin surface.
//
// # Endpoints
//   - GET    /get-all-users    : Paginated account listing.
//   - DELETE /delete-user/{id} : Permanent account removal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// The whole surface is admin-only.
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/get-all-users", handler.listUsers)
	router.Delete("/delete-user/{id}", handler.deleteUser)

	return router
}

/*
ListUsers returns one page of all registered accounts.

GET /api/v1/admin/get-all-users?page=&limit=

Response:
  - 200: {count, total, pagination, users}
  - 401: Missing or insufficient credentials
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.adminService.ListUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, fieldUsers, users, len(users), total, pagination.NewLinks(params, total))
}

/*
DeleteUser permanently removes a user account.

DELETE /api/v1/admin/delete-user/{id}

Response:
  - 200: {user}: The deleted account
  - 404: User not found
  - 401: Missing or insufficient credentials
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	user, err := handler.adminService.DeleteUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{fieldUser: user})
}
