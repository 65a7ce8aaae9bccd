package schema

// BlogCommentTable represents the 'blog.comment' table
type BlogCommentTable struct {
	Table     string
	ID        string
	Content   string
	AuthorID  string
	PostID    string
	CreatedAt string
	UpdatedAt string
}

// BlogComment is the schema definition for blog.comment
var BlogComment = BlogCommentTable{
	Table:     "blog.comment",
	ID:        "id",
	Content:   "content",
	AuthorID:  "author_id",
	PostID:    "post_id",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names in physical table order.
// Scan target lists in the repositories follow this order exactly.
func (t BlogCommentTable) Columns() []string {
	return []string{
		t.ID, t.Content, t.AuthorID, t.PostID, t.CreatedAt, t.UpdatedAt,
	}
}
