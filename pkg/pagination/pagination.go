// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting next/prev descriptors are delivered in the API
// response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
//
// It equals the start index of the [startIndex, endIndex) window the page
// selects out of the sorted collection.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// End returns the exclusive end index of the pagination window.
func (p Params) End() int {
	return p.Page * p.Limit
}

// PageRef points at an adjacent page with the same window size.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Links holds the next/prev descriptors included in list responses.
//
// # Invariants
//
// Next is present iff page*limit < total (there are items past this window).
// Prev is present iff page > 1 (the window does not start at index zero).
// A page beyond range therefore yields neither an error nor a Next link.
type Links struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// NewLinks constructs the next/prev descriptors for a response window.
func NewLinks(p Params, total int) Links {
	links := Links{}

	if p.End() < total {
		links.Next = &PageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Offset() > 0 {
		links.Prev = &PageRef{Page: p.Page - 1, Limit: p.Limit}
	}

	return links
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
