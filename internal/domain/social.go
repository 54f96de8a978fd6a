package domain

import (
	"strings"
	"time"
)

// Favorite marks a book as saved by a user. A user favorites a book at most once.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	BookID    int64     `json:"bookId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFavorite creates a favorite for userID on bookID.
func NewFavorite(userID, bookID int64) (*Favorite, error) {
	if userID <= 0 {
		return nil, NewValidationError("userId", "must be positive", ErrInvalidID)
	}
	if bookID <= 0 {
		return nil, NewValidationError("bookId", "must be positive", ErrInvalidID)
	}
	return &Favorite{UserID: userID, BookID: bookID, CreatedAt: time.Now().UTC()}, nil
}

// Comment is a user's remark on a book.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	BookID    int64     `json:"bookId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment field names as exposed to filter expressions.
const (
	CommentFieldBookID = "bookId"
	CommentFieldUserID = "userId"
)

// NewComment creates a comment by userID on bookID.
func NewComment(userID, bookID int64, content string) (*Comment, error) {
	c := &Comment{
		UserID:    userID,
		BookID:    bookID,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	}
	if c.UserID <= 0 {
		return nil, NewValidationError("userId", "must be positive", ErrInvalidID)
	}
	if c.BookID <= 0 {
		return nil, NewValidationError("bookId", "must be positive", ErrInvalidID)
	}
	if c.Content == "" {
		return nil, NewValidationError("content", "is required", ErrEmptyContent)
	}
	return c, nil
}
