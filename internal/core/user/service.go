package user

import (
	"context"
	"log/slog"
)

// ExistenceChecker gates reads of accounts that must already exist.
type ExistenceChecker interface {
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

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.List(context)
}

func (service *Service) GetUser(context context.Context, username string) (*User, error) {
	if err := service.checks.User(context, username); err != nil {
		return nil, err
	}
	return service.repo.GetByUsername(context, username)
}
