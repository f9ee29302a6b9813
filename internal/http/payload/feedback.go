package payload

import (
	"feedbacker/internal/core"

	"github.com/jellydator/validation"
)

type FeedbackRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (f FeedbackRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Content, validation.Required),
	)
}

func (f FeedbackRequest) ToMessage(username string) core.FeedbackMessage {
	return core.FeedbackMessage{
		Username: username,
		Title:    f.Title,
		Content:  f.Content,
	}
}
