package handler

import (
	"context"
	"net/http"

	"feedbacker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FeedbackService . FeedbackService
type FeedbackService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	Profile(ctx context.Context, caller, username string) (core.UserRecord, []core.FeedbackRecord, error)
	CreateFeedback(ctx context.Context, caller string, msg core.FeedbackMessage) (core.FeedbackRecord, error)
	GetFeedback(ctx context.Context, caller string, id uint) (core.FeedbackRecord, error)
	UpdateFeedback(ctx context.Context, caller string, id uint, title, content string) (core.FeedbackRecord, error)
	DeleteFeedback(ctx context.Context, caller string, id uint) error
	DeleteAccount(ctx context.Context, caller, username string) error
}

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Start(ctx context.Context, username string) (string, error)
	Resolve(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
