package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhanhvo/plume/internal/platform/database/schema"
)

/*
TestTableDefinitions verifies the schema-qualified table names and that
Columns() lists every column in physical table order — the repositories build
their select lists and scan targets from this order.
*/
func TestTableDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
	}{
		{
			"users_account",
			schema.UserAccount.Table,
			schema.UserAccount.Columns(),
		},
		{
			"blog_post",
			schema.BlogPost.Table,
			schema.BlogPost.Columns(),
		},
		{
			"blog_comment",
			schema.BlogComment.Table,
			schema.BlogComment.Columns(),
		},
	}

	expected := map[string][]string{
		"users.account": {
			"id", "username", "email", "passwordhash", "displayname",
			"avatarurl", "bio", "role", "saved_posts", "createdat", "updatedat",
		},
		"blog.post": {
			"id", "title", "content", "author_id", "keywords", "likes_amount",
			"post_comments", "comments_amount", "createdat", "updatedat",
		},
		"blog.comment": {
			"id", "content", "author_id", "post_id", "createdat", "updatedat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, expected, tt.table)
			assert.Equal(t, expected[tt.table], tt.columns)
		})
	}
}
