package article

import (
	"context"
	"log/slog"

	"github.com/dmlane/newswire/internal/platform/apperr"
	"github.com/dmlane/newswire/internal/platform/validate"
	"github.com/dmlane/newswire/pkg/pagination"
)

// ExistenceChecker gates operations on rows that must already exist.
type ExistenceChecker interface {
	Article(context context.Context, articleID int) error
	Topic(context context.Context, slug string) error
	User(context context.Context, username string) error
}

// CreateInput carries the client-supplied fields for a new article.
type CreateInput struct {
	Author   string
	Title    string
	Body     string
	Topic    string
	ImageURL string
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

// GetArticle returns one article with its live comment count.
//
// The id is checked for existence before the read so a missing article is a
// 404 rather than an empty aggregate row.
func (service *Service) GetArticle(context context.Context, articleID int) (*Article, error) {
	if err := service.checks.Article(context, articleID); err != nil {
		return nil, err
	}
	return service.repo.GetByID(context, articleID)
}

// ListArticles returns one page of article summaries and the total size of
// the filtered set.
//
// An unknown topic filter is a malformed request (400), not a missing
// resource: the topic arrives as a query filter, not a path segment. A topic
// that exists but has no articles is an empty page with total 0.
func (service *Service) ListArticles(context context.Context, topic, sortBy, order string, page pagination.Params) ([]*Article, int, error) {
	sort, err := NewSort(sortBy, order)
	if err != nil {
		return nil, 0, err
	}

	if topic != "" {
		if err := service.checks.Topic(context, topic); err != nil {
			if apperr.IsNotFound(err) {
				return nil, 0, validate.RequiredError(FieldTopic, "Must be an existing topic")
			}
			return nil, 0, err
		}
	}

	return service.repo.List(context, Filter{Topic: topic}, sort, page.Limit, page.Offset())
}

// CreateArticle validates input, verifies the referenced topic and author
// exist (in that order), inserts, and re-reads the stored row so the response
// carries the server-assigned id, timestamp, and a zero comment count.
func (service *Service) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	validator := &validate.Validator{}
	validator.Required(FieldAuthor, input.Author).
		Required(FieldTitle, input.Title).
		Required(FieldBody, input.Body).
		Required(FieldTopic, input.Topic)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.ImageURL == "" {
		input.ImageURL = DefaultImageURL
	}

	// Topic before author: a request with both references invalid reports the
	// topic failure. Callers test against this ordering.
	if err := service.checks.Topic(context, input.Topic); err != nil {
		return nil, err
	}
	if err := service.checks.User(context, input.Author); err != nil {
		return nil, err
	}

	created := &Article{
		Author:   input.Author,
		Title:    input.Title,
		Body:     input.Body,
		Topic:    input.Topic,
		ImageURL: input.ImageURL,
	}
	if err := service.repo.Insert(context, created); err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", created.ArticleID),
		slog.String("topic", created.Topic),
	)

	return service.repo.GetByID(context, created.ArticleID)
}

// UpdateVotes applies a signed delta to an article's vote counter.
//
// The counter may go negative; no floor is enforced.
func (service *Service) UpdateVotes(context context.Context, articleID int, delta *int) (*Article, error) {
	if delta == nil {
		return nil, validate.RequiredError(FieldIncVotes, "This field is required")
	}

	if err := service.checks.Article(context, articleID); err != nil {
		return nil, err
	}

	return service.repo.UpdateVotes(context, articleID, *delta)
}

// DeleteArticle removes an article after verifying it exists. Its comments
// are removed by the storage layer's cascade.
func (service *Service) DeleteArticle(context context.Context, articleID int) error {
	if err := service.checks.Article(context, articleID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, articleID); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int("article_id", articleID))
	return nil
}
