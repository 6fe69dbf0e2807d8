package comment

import "time"

// Comment is a user-authored reply attached to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldAuthor   = "username"
	FieldBody     = "body"
	FieldIncVotes = "inc_votes"
)
