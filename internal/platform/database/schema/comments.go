package schema

// RefCommentsTable represents the 'comments' table
type RefCommentsTable struct {
	Table     string
	CommentID string
	ArticleID string
	Author    string
	Body      string
	Votes     string
	CreatedAt string
}

// RefComments is the schema definition for comments
var RefComments = RefCommentsTable{
	Table:     "comments",
	CommentID: "comment_id",
	ArticleID: "article_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	CreatedAt: "created_at",
}

func (t RefCommentsTable) Columns() []string {
	return []string{t.CommentID, t.ArticleID, t.Author, t.Body, t.Votes, t.CreatedAt}
}
