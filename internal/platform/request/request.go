// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/ctxutil"
	"github.com/minhanhvo/plume/internal/platform/sec"
	"github.com/minhanhvo/plume/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Subject extracts the authenticated subject from the request context.

Returns nil if the request is not authenticated.
*/
func Subject(request *http.Request) *sec.Subject {
	return ctxutil.GetSubject(request.Context())
}

/*
RequiredSubject ensures the request is authenticated and returns the subject.

Returns:
  - *sec.Subject: The authenticated subject
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredSubject(request *http.Request) (*sec.Subject, error) {

	// Get the resolved subject
	subject := ctxutil.GetSubject(request.Context())

	// If the request is not authenticated, return an error
	if subject == nil {
		return nil, apperr.Unauthorized("Unauthenticated")
	}

	return subject, nil
}
