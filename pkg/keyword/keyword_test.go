// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhanhvo/plume/pkg/keyword"
)

/*
TestNormalize verifies accent removal, lowercasing, and trimming.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_lowercase", "golang", "golang"},
		{"uppercase", "GoLang", "golang"},
		{"accents", "Café", "cafe"},
		{"vietnamese", "Hà Nội", "ha noi"},
		{"surrounding_space", "  devops  ", "devops"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyword.Normalize(tt.input))
		})
	}
}

/*
TestNormalizeAll verifies de-duplication and empty filtering while keeping
first-seen order.
*/
func TestNormalizeAll(t *testing.T) {
	result := keyword.NormalizeAll([]string{"Go", "café", "GO", "  ", "Cafe", "redis"})

	assert.Equal(t, []string{"go", "cafe", "redis"}, result)
}

/*
TestNormalizeAll_Empty verifies the nil contract for empty input.
*/
func TestNormalizeAll_Empty(t *testing.T) {
	assert.Nil(t, keyword.NormalizeAll(nil))
	assert.Nil(t, keyword.NormalizeAll([]string{}))
}
