package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/store"
)

// PostgresFavoriteStore implements store.FavoriteStore.
type PostgresFavoriteStore struct {
	db *sql.DB
}

// NewPostgresFavoriteStore creates a favorite store over db.
func NewPostgresFavoriteStore(db *sql.DB) *PostgresFavoriteStore {
	return &PostgresFavoriteStore{db: db}
}

var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

// Create implements store.FavoriteStore.Create.
func (s *PostgresFavoriteStore) Create(ctx context.Context, fav *domain.Favorite) error {
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO favorites (user_id, book_id, created_at) VALUES ($1, $2, $3) RETURNING id",
		fav.UserID, fav.BookID, fav.CreatedAt,
	).Scan(&fav.ID)
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err):
		return store.ErrFavoriteExists
	case IsForeignKeyViolation(err):
		return store.ErrBookNotFound
	default:
		return MapError(err)
	}
}

// Delete implements store.FavoriteStore.Delete.
func (s *PostgresFavoriteStore) Delete(ctx context.Context, userID, bookID int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND book_id = $2", userID, bookID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrFavoriteNotFound)
}

// PageBooks implements store.FavoriteStore.PageBooks. Books another user has not
// had approved yet are left out even if they were favorited.
func (s *PostgresFavoriteStore) PageBooks(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]domain.Book, int64, error) {
	return fetchPage(ctx, s.db, pageSpec{
		columns: prefixColumns("b", bookColumns),
		from:    "favorites f JOIN books b ON b.id = f.book_id",
		where:   fmt.Sprintf(" WHERE f.user_id = $1 AND (b.state <> %d OR b.create_id = $1)", domain.BookStateUnapproved),
		args:    []any{userID},
		orderBy: "f.id ASC",
	}, offset, limit, scanBook)
}
