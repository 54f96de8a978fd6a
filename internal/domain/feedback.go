package domain

import (
	"strings"
	"time"
)

// Feedback is a free-text note sent by a user. It is never updated or deleted.
type Feedback struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedback creates a feedback entry.
func NewFeedback(userID int64, content string) (*Feedback, error) {
	f := &Feedback{
		Content:   strings.TrimSpace(content),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if f.UserID <= 0 {
		return nil, NewValidationError("userId", "must be positive", ErrInvalidID)
	}
	if f.Content == "" {
		return nil, NewValidationError("content", "is required", ErrEmptyContent)
	}
	return f, nil
}
