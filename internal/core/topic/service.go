package topic

import (
	"context"
	"log/slog"

	"github.com/dmlane/newswire/internal/platform/validate"
	"github.com/dmlane/newswire/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTopics(context context.Context) ([]*Topic, error) {
	return service.repo.List(context)
}

// CreateTopic inserts a new topic. The supplied slug is normalized to its
// canonical ASCII form before storage; a slug that normalizes to nothing is
// malformed input.
func (service *Service) CreateTopic(context context.Context, rawSlug, description string) (*Topic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldSlug, rawSlug).Required(FieldDescription, description)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	normalized := slug.From(rawSlug)
	if normalized == "" {
		return nil, validate.RequiredError(FieldSlug, "Must contain at least one letter or digit")
	}

	created := &Topic{Slug: normalized, Description: description}
	if err := service.repo.Insert(context, created); err != nil {
		return nil, err
	}

	service.logger.Info("topic_created", slog.String("slug", created.Slug))
	return created, nil
}
