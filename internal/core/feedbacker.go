package core

import (
	"context"
	"errors"
	"feedbacker/internal/repository"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUnauthenticated error = errors.New("login required")
var ErrNotOwner error = errors.New("not the resource owner")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrDuplicateUser error = errors.New("username or email already taken")
var ErrUserNotFound error = errors.New("user not found")
var ErrFeedbackNotFound error = errors.New("feedback not found")

// Feedbacker holds the account and feedback operations together with the
// ownership checks guarding them. The caller identity passed to guarded
// methods comes from the session; the empty string means anonymous.
type Feedbacker struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewFeedbacker(logger *zap.SugaredLogger, repo Repository) *Feedbacker {
	return &Feedbacker{
		logs: logger,
		repo: repo,
	}
}

// Register hashes the password and persists a new user. Duplicates are
// decided by the database constraint, not checked in advance, so two
// concurrent registrations of the same username fail one of the two.
func (f *Feedbacker) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
		Email:        msg.Email,
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
	}

	if err := f.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return UserRecord{}, ErrDuplicateUser
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	f.logs.Infow("user registered", "username", user.Username)

	return userToRecord(user), nil
}

// Authenticate verifies a username/password pair. A missing user and a
// wrong password both return ErrInvalidCredentials so the response does
// not leak which field was wrong.
func (f *Feedbacker) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := f.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return userToRecord(user), nil
}

// Profile returns a user's record and feedback, for the owner only.
func (f *Feedbacker) Profile(ctx context.Context, caller, username string) (UserRecord, []FeedbackRecord, error) {
	if err := f.guardUser(caller, username); err != nil {
		return UserRecord{}, nil, err
	}

	user, err := f.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, nil, ErrUserNotFound
		}
		return UserRecord{}, nil, fmt.Errorf("get user: %w", err)
	}

	feedback, err := f.repo.GetFeedbackForUser(ctx, username)
	if err != nil {
		return UserRecord{}, nil, fmt.Errorf("get user feedback: %w", err)
	}

	return userToRecord(user), feedbackToRecords(feedback), nil
}

func (f *Feedbacker) CreateFeedback(ctx context.Context, caller string, msg FeedbackMessage) (FeedbackRecord, error) {
	if err := f.guardUser(caller, msg.Username); err != nil {
		return FeedbackRecord{}, err
	}

	feedback := repository.Feedback{
		Title:    msg.Title,
		Content:  msg.Content,
		Username: msg.Username,
	}

	if err := f.repo.CreateFeedback(ctx, &feedback); err != nil {
		return FeedbackRecord{}, fmt.Errorf("create feedback: %w", err)
	}

	f.logs.Infow("feedback created", "username", msg.Username, "feedback_id", feedback.ID)

	return feedbackToRecord(feedback), nil
}

func (f *Feedbacker) GetFeedback(ctx context.Context, caller string, id uint) (FeedbackRecord, error) {
	feedback, err := f.getOwnedFeedback(ctx, caller, id)
	if err != nil {
		return FeedbackRecord{}, err
	}

	return feedbackToRecord(feedback), nil
}

func (f *Feedbacker) UpdateFeedback(ctx context.Context, caller string, id uint, title, content string) (FeedbackRecord, error) {
	feedback, err := f.getOwnedFeedback(ctx, caller, id)
	if err != nil {
		return FeedbackRecord{}, err
	}

	feedback.Title = title
	feedback.Content = content

	if err := f.repo.UpdateFeedback(ctx, feedback); err != nil {
		return FeedbackRecord{}, fmt.Errorf("update feedback: %w", err)
	}

	f.logs.Infow("feedback updated", "username", caller, "feedback_id", id)

	return feedbackToRecord(feedback), nil
}

func (f *Feedbacker) DeleteFeedback(ctx context.Context, caller string, id uint) error {
	if _, err := f.getOwnedFeedback(ctx, caller, id); err != nil {
		return err
	}

	if err := f.repo.DeleteFeedback(ctx, id); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}

	f.logs.Infow("feedback deleted", "username", caller, "feedback_id", id)

	return nil
}

// DeleteAccount removes the user and all their feedback in one
// transaction, for the owner only.
func (f *Feedbacker) DeleteAccount(ctx context.Context, caller, username string) error {
	if err := f.guardUser(caller, username); err != nil {
		return err
	}

	if _, err := f.repo.GetUser(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := f.repo.DeleteUserWithFeedback(ctx, username); err != nil {
		return fmt.Errorf("delete user with feedback: %w", err)
	}

	f.logs.Infow("account deleted", "username", username)

	return nil
}

// guardUser admits only the authenticated owner of a user resource. The
// check runs before any lookup so a denied caller learns nothing about
// whether the resource exists.
func (f *Feedbacker) guardUser(caller, username string) error {
	if caller == "" {
		return ErrUnauthenticated
	}
	if caller != username {
		return ErrNotOwner
	}
	return nil
}

func (f *Feedbacker) getOwnedFeedback(ctx context.Context, caller string, id uint) (repository.Feedback, error) {
	if caller == "" {
		return repository.Feedback{}, ErrUnauthenticated
	}

	feedback, err := f.repo.GetFeedbackByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return repository.Feedback{}, ErrFeedbackNotFound
		}
		return repository.Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}

	if feedback.Username != caller {
		return repository.Feedback{}, ErrNotOwner
	}

	return feedback, nil
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func feedbackToRecord(feedback repository.Feedback) FeedbackRecord {
	return FeedbackRecord{
		ID:       feedback.ID,
		Title:    feedback.Title,
		Content:  feedback.Content,
		Username: feedback.Username,
	}
}

func feedbackToRecords(feedback []repository.Feedback) []FeedbackRecord {
	records := make([]FeedbackRecord, len(feedback))
	for i, fb := range feedback {
		records[i] = feedbackToRecord(fb)
	}
	return records
}
