package schema

// RefArticlesTable represents the 'articles' table
type RefArticlesTable struct {
	Table         string
	ArticleID     string
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     string
	Votes         string
	ArticleImgURL string
}

// RefArticles is the schema definition for articles
var RefArticles = RefArticlesTable{
	Table:         "articles",
	ArticleID:     "article_id",
	Title:         "title",
	Topic:         "topic",
	Author:        "author",
	Body:          "body",
	CreatedAt:     "created_at",
	Votes:         "votes",
	ArticleImgURL: "article_img_url",
}

func (t RefArticlesTable) Columns() []string {
	return []string{t.ArticleID, t.Title, t.Topic, t.Author, t.Body, t.CreatedAt, t.Votes, t.ArticleImgURL}
}
