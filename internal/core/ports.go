package core

import (
	"context"
	"feedbacker/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	DeleteUserWithFeedback(ctx context.Context, username string) error
	CreateFeedback(ctx context.Context, feedback *repository.Feedback) error
	GetFeedbackByID(ctx context.Context, id uint) (repository.Feedback, error)
	GetFeedbackForUser(ctx context.Context, username string) ([]repository.Feedback, error)
	UpdateFeedback(ctx context.Context, feedback repository.Feedback) error
	DeleteFeedback(ctx context.Context, id uint) error
}
