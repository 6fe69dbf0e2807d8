package article

import "context"

type Repository interface {
	// GetByID returns one article with its computed comment count.
	GetByID(context context.Context, articleID int) (*Article, error)

	// List returns one page of article summaries plus the total size of the
	// filtered set, independent of pagination.
	List(context context.Context, filter Filter, sort Sort, limit, offset int) ([]*Article, int, error)

	// Insert persists a new article and fills in the generated id.
	Insert(context context.Context, article *Article) error

	// UpdateVotes applies a signed delta to the stored vote counter in a
	// single atomic statement and returns the updated row.
	UpdateVotes(context context.Context, articleID, delta int) (*Article, error)

	Delete(context context.Context, articleID int) error
}
