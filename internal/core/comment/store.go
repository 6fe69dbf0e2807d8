package comment

import "context"

type Repository interface {
	// ListForArticle returns one page of an article's comments, newest first,
	// plus the article's total comment count.
	ListForArticle(context context.Context, articleID, limit, offset int) ([]*Comment, int, error)

	// Insert persists a new comment and fills in the generated id, timestamp,
	// and initial vote count.
	Insert(context context.Context, comment *Comment) error

	// UpdateVotes applies a signed delta to the stored vote counter in a
	// single atomic statement and returns the updated row.
	UpdateVotes(context context.Context, commentID, delta int) (*Comment, error)

	Delete(context context.Context, commentID int) error
}
