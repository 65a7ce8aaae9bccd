// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package respond_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/respond"
	"github.com/minhanhvo/plume/pkg/pagination"
)

/*
TestList verifies the paginated list envelope shape, including pagination
link omission at the edges.
*/
func TestList(t *testing.T) {
	// 1. A middle page carries both links.
	recorder := httptest.NewRecorder()
	links := pagination.NewLinks(pagination.Params{Page: 2, Limit: 2}, 6)
	respond.List(recorder, "posts", []string{"a", "b"}, 2, 6, links)

	assert.Equal(t, 200, recorder.Code)
	assert.JSONEq(t, `{
		"count": 2,
		"total": 6,
		"pagination": {"next": {"page": 3, "limit": 2}, "prev": {"page": 1, "limit": 2}},
		"posts": ["a", "b"]
	}`, recorder.Body.String())

	// 2. The first page of a single-page collection omits both links.
	recorder = httptest.NewRecorder()
	links = pagination.NewLinks(pagination.Params{Page: 1, Limit: 10}, 2)
	respond.List(recorder, "users", []string{"a", "b"}, 2, 2, links)

	assert.JSONEq(t, `{
		"count": 2,
		"total": 2,
		"pagination": {},
		"users": ["a", "b"]
	}`, recorder.Body.String())
}

/*
TestError verifies the uniform error envelope and status mapping.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			"app_error_passes_through",
			apperr.NotFound("Post not found"),
			404,
			`{"message":"Post not found"}`,
		},
		{
			"validation_details_flattened",
			apperr.ValidationError("Validation failed",
				apperr.FieldError{Field: "title", Message: "This field is required"},
				apperr.FieldError{Field: "content", Message: "This field is required"},
			),
			400,
			`{"message":"title: This field is required, content: This field is required"}`,
		},
		{
			"unknown_error_hidden",
			errors.New("pq: connection refused"),
			500,
			`{"message":"Something went wrong, try again later"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", "/posts", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}
