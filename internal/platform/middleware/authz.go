// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/ctxutil"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/internal/platform/sec"
)

// SubjectResolver verifies a bearer token and resolves the live subject
// behind it.
//
// # Why an interface?
//
// Defining SubjectResolver here decouples the middleware from the auth
// service implementation, allowing us to easily inject fakes during unit
// testing. The resolver must check that the token's subject still exists in
// storage — the existence check comes before any field access, so a deleted
// account fails with Unauthenticated rather than an unrelated error.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, tokenString string) (*sec.Subject, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve the subject via the verifier.
//  4. Inject [*sec.Subject] into the request context for downstream use.
func Authenticate(verifier SubjectResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Subject Resolution ─────────────────────────────────────────
			tokenStr := parts[1]
			subject, err := verifier.ResolveSubject(request.Context(), tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSubject(request.Context(), subject)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// This is the "general" guard mode: any resolved subject passes; ownership
// of the touched resource is enforced downstream against the resource's
// author/owner field, not against route parameters.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		subject := ctxutil.GetSubject(request.Context())
		if subject == nil {
			respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests if the authenticated subject doesn't have the
// required role.
//
// This is the single role policy for all modes: the admin-only guard is
// RequireRole(sec.RoleAdmin). It implies [RequireAuth] so both need not be
// mounted. Insufficient role responds 401 — the API treats a wrong-role
// credential the same as a missing one.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			subject := ctxutil.GetSubject(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if subject == nil {
				respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !subject.Role.AtLeast(role) {
				respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireSelfOrRole blocks requests whose route parameter names a user other
// than the subject, unless the subject holds the override role.
//
// Mounted only on user-scoped routes (profile update, saved posts) where the
// parameter genuinely identifies a user. Resource-scoped routes (comments,
// likes) must NOT use it — their ownership lives on the resource itself.
func RequireSelfOrRole(param string, role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			subject := ctxutil.GetSubject(request.Context())

			if subject == nil {
				respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
				return
			}

			if subject.ID != chi.URLParam(request, param) && !subject.Role.AtLeast(role) {
				respond.Error(writer, request, apperr.Unauthorized("Unauthenticated"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
