package postgres

import (
	"context"
	"database/sql"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

const commentColumns = "id, user_id, book_id, content, created_at"

// PostgresCommentStore implements store.CommentStore.
type PostgresCommentStore struct {
	db *sql.DB
}

// NewPostgresCommentStore creates a comment store over db.
func NewPostgresCommentStore(db *sql.DB) *PostgresCommentStore {
	return &PostgresCommentStore{db: db}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create.
func (s *PostgresCommentStore) Create(ctx context.Context, c *domain.Comment) error {
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO comments (user_id, book_id, content, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		c.UserID, c.BookID, c.Content, c.CreatedAt,
	).Scan(&c.ID)
	if IsForeignKeyViolation(err) {
		return store.ErrBookNotFound
	}
	return MapError(err)
}

// GetByID implements store.CommentStore.GetByID.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+commentColumns+" FROM comments WHERE id = $1", id)
	c, err := scanComment(row)
	if err != nil {
		return nil, mapNotFound(err, store.ErrCommentNotFound)
	}
	return &c, nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCommentNotFound)
}

// Page implements store.CommentStore.Page.
func (s *PostgresCommentStore) Page(
	ctx context.Context,
	expr filter.Expression,
	offset, limit int,
) ([]domain.Comment, int64, error) {
	where, args, err := compileWhere(expr, filter.CommentFields)
	if err != nil {
		return nil, 0, err
	}

	return fetchPage(ctx, s.db, pageSpec{
		columns: commentColumns,
		from:    "comments",
		where:   where,
		args:    args,
		orderBy: "id ASC",
	}, offset, limit, scanComment)
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.UserID, &c.BookID, &c.Content, &c.CreatedAt)
	return c, err
}
