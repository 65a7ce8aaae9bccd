// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/platform/ctxutil"
	"github.com/minhanhvo/plume/internal/platform/sec"
)

/*
TestRequestID verifies round-tripping a request ID through the context.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()

	// 1. Missing ID yields an empty string, not a panic.
	assert.Equal(t, "", ctxutil.GetRequestID(ctx))

	// 2. A stored ID comes back intact.
	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger verifies the logger round-trip and the default fallback.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()

	// 1. No stored logger falls back to slog.Default.
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. A stored logger is returned as-is.
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Equal(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestSubject verifies the authenticated subject round-trip and the nil contract
for anonymous requests.
*/
func TestSubject(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context yields nil.
	assert.Nil(t, ctxutil.GetSubject(ctx))

	// 2. A stored subject comes back with all fields intact.
	subject := &sec.Subject{
		ID:   "0190a6e2-13fb-7cc3-98a2-6c1e4f5a7b3d",
		Name: "minh",
		Role: sec.RoleAdmin,
	}
	ctx = ctxutil.WithSubject(ctx, subject)

	got := ctxutil.GetSubject(ctx)
	require.NotNil(t, got)
	assert.Equal(t, subject.ID, got.ID)
	assert.Equal(t, subject.Name, got.Name)
	assert.Equal(t, sec.RoleAdmin, got.Role)
}
