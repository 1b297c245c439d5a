package moderation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const pendingContentIDPrefix = "pending_"

// Post is the inbound content item handed over by the host forum.
type Post struct {
	Raw        string `json:"raw"`
	UserID     int64  `json:"user_id"`
	TopicID    int64  `json:"topic_id"`
	ID         *int64 `json:"id,omitempty"`
	PostNumber int    `json:"post_number"`
	TopicSlug  string `json:"topic_slug"`
	TopicTitle string `json:"topic_title,omitempty"`
}

// Request is the immutable input of a single analysis call.
type Request struct {
	Content    string
	AuthorID   string
	ContextID  string
	ContentID  string
	ContentURL string
	// TopicTitle is only set for the first post of a topic.
	TopicTitle string
}

// NewRequestFromPost builds the analysis request for a post. Posts that were
// not persisted yet get a time based placeholder identifier.
func NewRequestFromPost(post Post, baseURL string, now time.Time) Request {
	contentID := fmt.Sprintf("%s%d", pendingContentIDPrefix, now.Unix())
	if post.ID != nil {
		contentID = strconv.FormatInt(*post.ID, 10)
	}

	var topicTitle string
	if post.PostNumber == 1 {
		topicTitle = post.TopicTitle
	}

	return Request{
		Content:    post.Raw,
		AuthorID:   strconv.FormatInt(post.UserID, 10),
		ContextID:  strconv.FormatInt(post.TopicID, 10),
		ContentID:  contentID,
		ContentURL: ContentURL(baseURL, post.TopicSlug, post.TopicID, post.PostNumber),
		TopicTitle: topicTitle,
	}
}

func ContentURL(baseURL, slug string, topicID int64, postNumber int) string {
	return fmt.Sprintf("%s/t/%s/%d/%d", strings.TrimSuffix(baseURL, "/"), slug, topicID, postNumber)
}

func (r Request) Pending() bool {
	return strings.HasPrefix(r.ContentID, pendingContentIDPrefix)
}
