package article

import (
	"strings"
	"time"

	"github.com/dmlane/newswire/internal/platform/validate"
)

// DefaultImageURL is substituted when article creation omits article_img_url.
const DefaultImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents a published piece of writing under a topic.
//
// CommentCount is derived at read time from the comments table; it is never
// stored. Body is omitted from list summaries.
type Article struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	ImageURL     string    `json:"article_img_url"`
	CommentCount int       `json:"comment_count"`
}

// Filter holds the parameters for a filtered article listing.
type Filter struct {
	Topic string // exact match against topics.slug; empty means no filter
}

// Global field names for validation
const (
	FieldAuthor   = "author"
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldTopic    = "topic"
	FieldImageURL = "article_img_url"
	FieldIncVotes = "inc_votes"
	FieldSortBy   = "sort_by"
	FieldOrder    = "order"
)

// Sortable columns. comment_count refers to the aggregate alias in the
// listing query, so it sorts like any physical column.
var sortColumns = []string{"author", "title", "article_id", "topic", "votes", "comment_count", "created_at"}

// Listing defaults.
const (
	DefaultSortColumn = "created_at"
	DefaultOrder      = "DESC"
)

// Sort is a validated ordering for the article listing.
//
// A Sort only ever exists with a column from the allow-list and a direction
// of ASC or DESC, so stores can interpolate it into SQL directly.
type Sort struct {
	Column    string
	Direction string
}

// NewSort validates sort_by and order request values against their
// allow-lists. Empty values take the defaults; anything outside the
// allow-lists fails with a 400 before storage is touched.
func NewSort(sortBy, order string) (Sort, error) {
	sort := Sort{Column: DefaultSortColumn, Direction: DefaultOrder}
	validator := &validate.Validator{}

	if sortBy != "" {
		validator.OneOf(FieldSortBy, sortBy, sortColumns...)
		sort.Column = sortBy
	}

	if order != "" {
		normalized := strings.ToUpper(order)
		validator.OneOf(FieldOrder, normalized, "ASC", "DESC")
		sort.Direction = normalized
	}

	if err := validator.Err(); err != nil {
		return Sort{}, err
	}

	return sort, nil
}
