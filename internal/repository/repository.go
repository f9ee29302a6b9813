package repository

import (
	"context"
	"errors"
	"feedbacker/internal/db"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrFeedbackNotFound error = errors.New("feedback not found")
var ErrDuplicateUser error = errors.New("username or email already taken")

type FeedbackRepository struct {
	db Storage
}

func NewFeedbackRepository(db Storage) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

func (r *FeedbackRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Feedback{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *FeedbackRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.CreateRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// DeleteUserWithFeedback removes the user and every feedback record the
// user owns as one atomic unit, so no orphaned feedback survives.
func (r *FeedbackRepository) DeleteUserWithFeedback(ctx context.Context, username string) error {
	err := r.db.Transaction(ctx, func(tx db.Tx) error {
		if err := tx.DeleteAllBy(ctx, "username", username, &Feedback{}); err != nil {
			return fmt.Errorf("delete user feedback: %w", err)
		}
		if err := tx.DeleteAllBy(ctx, "username", username, &User{}); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete user with feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *Feedback) error {
	err := r.db.CreateRecord(ctx, feedback)
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) GetFeedbackByID(ctx context.Context, id uint) (Feedback, error) {
	var feedback Feedback

	err := r.db.GetOneBy(ctx, "id", id, &feedback)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}
		return Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}

	return feedback, nil
}

func (r *FeedbackRepository) GetFeedbackForUser(ctx context.Context, username string) ([]Feedback, error) {
	feedback := []Feedback{}

	err := r.db.GetAllBy(ctx, "username", username, &feedback)
	if err != nil {
		return nil, fmt.Errorf("get feedback for user: %w", err)
	}

	return feedback, nil
}

func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, feedback Feedback) error {
	err := r.db.SaveRecord(ctx, &feedback)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, id uint) error {
	err := r.db.DeleteAllBy(ctx, "id", id, &Feedback{})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}

	return nil
}
