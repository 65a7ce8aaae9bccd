package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table          string
	ID             string
	Title          string
	Content        string
	AuthorID       string
	Keywords       string
	LikesAmount    string
	PostComments   string
	CommentsAmount string
	CreatedAt      string
	UpdatedAt      string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:          "blog.post",
	ID:             "id",
	Title:          "title",
	Content:        "content",
	AuthorID:       "author_id",
	Keywords:       "keywords",
	LikesAmount:    "likes_amount",
	PostComments:   "post_comments",
	CommentsAmount: "comments_amount",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names in physical table order.
// Scan target lists in the repositories follow this order exactly.
func (t BlogPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Content, t.AuthorID, t.Keywords, t.LikesAmount,
		t.PostComments, t.CommentsAmount, t.CreatedAt, t.UpdatedAt,
	}
}
