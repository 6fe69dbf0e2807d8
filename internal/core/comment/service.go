package comment

import (
	"context"
	"log/slog"

	"github.com/dmlane/newswire/internal/platform/validate"
	"github.com/dmlane/newswire/pkg/pagination"
)

// ExistenceChecker gates operations on rows that must already exist.
type ExistenceChecker interface {
	Article(context context.Context, articleID int) error
	Comment(context context.Context, commentID int) error
	User(context context.Context, username string) error
}

type Service struct {
	repo   Repository
	checks ExistenceChecker
	logger *slog.Logger
}

func NewService(repo Repository, checks ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		checks: checks,
		logger: logger,
	}
}

// ListForArticle returns one page of an article's comments, newest first.
//
// The parent article must exist (404 otherwise); an article with no comments
// is an empty page, not an error.
func (service *Service) ListForArticle(context context.Context, articleID int, page pagination.Params) ([]*Comment, int, error) {
	if err := service.checks.Article(context, articleID); err != nil {
		return nil, 0, err
	}

	return service.repo.ListForArticle(context, articleID, page.Limit, page.Offset())
}

// Add inserts a new comment under an article.
//
// Article before author: a request where both references are invalid reports
// the article failure. Callers test against this ordering.
func (service *Service) Add(context context.Context, articleID int, author, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldAuthor, author).Required(FieldBody, body)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.checks.Article(context, articleID); err != nil {
		return nil, err
	}
	if err := service.checks.User(context, author); err != nil {
		return nil, err
	}

	created := &Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
	}
	if err := service.repo.Insert(context, created); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", articleID),
	)

	return created, nil
}

// UpdateVotes applies a signed delta to a comment's vote counter.
//
// The counter may go negative; no floor is enforced.
func (service *Service) UpdateVotes(context context.Context, commentID int, delta *int) (*Comment, error) {
	if delta == nil {
		return nil, validate.RequiredError(FieldIncVotes, "This field is required")
	}

	if err := service.checks.Comment(context, commentID); err != nil {
		return nil, err
	}

	return service.repo.UpdateVotes(context, commentID, *delta)
}

// Remove deletes a comment after verifying it exists.
func (service *Service) Remove(context context.Context, commentID int) error {
	if err := service.checks.Comment(context, commentID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, commentID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", commentID))
	return nil
}
