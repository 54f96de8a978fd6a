package postgres

import (
	"context"
	"fmt"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/store"
)

// PostgresFeedbackStore implements store.FeedbackStore.
type PostgresFeedbackStore struct {
	db store.DBTX
}

// NewPostgresFeedbackStore creates a feedback store over db.
func NewPostgresFeedbackStore(db store.DBTX) *PostgresFeedbackStore {
	return &PostgresFeedbackStore{db: db}
}

var _ store.FeedbackStore = (*PostgresFeedbackStore)(nil)

// Create implements store.FeedbackStore.Create.
func (s *PostgresFeedbackStore) Create(ctx context.Context, fb *domain.Feedback) error {
	if fb.UserID <= 0 || fb.Content == "" {
		return fmt.Errorf("%w: feedback needs a user and content", store.ErrInvalidEntity)
	}

	err := s.db.QueryRowContext(ctx,
		"INSERT INTO feedback (content, user_id, created_at) VALUES ($1, $2, $3) RETURNING id",
		fb.Content, fb.UserID, fb.CreatedAt,
	).Scan(&fb.ID)
	return MapError(err)
}
