package request

import (
	"fmt"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
)

type ModerateRequest struct {
	Raw        string `json:"raw"`
	UserID     int64  `json:"user_id"`
	TopicID    int64  `json:"topic_id"`
	ID         *int64 `json:"id,omitempty"`
	PostNumber int    `json:"post_number"`
	TopicSlug  string `json:"topic_slug"`
	TopicTitle string `json:"topic_title,omitempty"`
}

func (r *ModerateRequest) Validate() error {
	if r.TopicID <= 0 {
		return fmt.Errorf("topic_id is required")
	}
	if r.PostNumber <= 0 {
		return fmt.Errorf("post_number must be positive")
	}
	if r.TopicSlug == "" {
		return fmt.Errorf("topic_slug is required")
	}
	return nil
}

func (r *ModerateRequest) Post() domain.Post {
	return domain.Post{
		Raw:        r.Raw,
		UserID:     r.UserID,
		TopicID:    r.TopicID,
		ID:         r.ID,
		PostNumber: r.PostNumber,
		TopicSlug:  r.TopicSlug,
		TopicTitle: r.TopicTitle,
	}
}
