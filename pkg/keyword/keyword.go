// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// Package keyword normalizes post keyword lists into a canonical ASCII form.
//
// # Usage
//
// Keywords are free-text labels attached to posts and matched case-insensitively
// in searches. This package handles normalization, accent removal, and
// de-duplication so that "Café" and "cafe" index identically.
package keyword

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts a single keyword into its canonical form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase and trims surrounding whitespace.
func Normalize(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase and trim
	return strings.TrimSpace(strings.ToLower(result))
}

// NormalizeAll normalizes every keyword in the list, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeAll(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(keywords))
	result := make([]string, 0, len(keywords))

	for _, raw := range keywords {
		k := Normalize(raw)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
