// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

/*
Package post implements the blog post domain of the Plume platform.

It owns the post lifecycle (create, update, delete), the public discovery
surface (listing, single fetch, likes), and the denormalized linkage between
posts and their comments.

# Architecture

  - Entities: Post with denormalized counters (likes_amount, comments_amount)
    and the ordered post_comments reference list.
  - Storage: Counter and list maintenance is single-statement atomic SQL, so
    concurrent mutations can never lose updates.
  - Cache: Single-post reads are served read-through from Redis and
    invalidated on every mutation.
*/
package post

import (
	"time"
)

// # Domain Entities

// Post represents a published article on the Plume platform.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"author_id"`
	Keywords       []string  `json:"keywords"`
	LikesAmount    int       `json:"likes_amount"`
	PostComments   []string  `json:"post_comments"`
	CommentsAmount int       `json:"comments_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldPost     = "post"
	FieldPosts    = "posts"
	FieldComments = "comments"
	FieldMsg      = "msg"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldKeywords = "keywords"
)

// TitleMaxLength bounds post titles, matching the varchar(50) column.
const TitleMaxLength = 50
