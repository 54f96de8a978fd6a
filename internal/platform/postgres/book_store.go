package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/platform/logger"
	"github.com/zaishu/zaishu-api/internal/store"
)

const bookColumns = "id, name, isbn, author, cover, summary, classify_id, create_id, state, created_at"

// PostgresBookStore implements store.BookStore.
type PostgresBookStore struct {
	db *sql.DB
}

// NewPostgresBookStore creates a book store over db.
func NewPostgresBookStore(db *sql.DB) *PostgresBookStore {
	return &PostgresBookStore{db: db}
}

var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContext(ctx)

	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO books (name, isbn, author, cover, summary, classify_id, create_id, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		book.Name, book.ISBN, book.Author, book.Cover, book.Summary,
		book.ClassifyID, book.CreateID, int64(book.State), book.CreatedAt,
	).Scan(&book.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrCategoryNotFound
		}
		log.Error("failed to insert book",
			slog.String("error", err.Error()),
			slog.Int64("create_id", book.CreateID))
		return MapError(err)
	}

	log.Debug("book created", slog.Int64("book_id", book.ID))
	return nil
}

// GetByID implements store.BookStore.GetByID.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	book, err := scanBook(row)
	if err != nil {
		return nil, mapNotFound(err, store.ErrBookNotFound)
	}
	return &book, nil
}

// Delete implements store.BookStore.Delete.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBookNotFound)
}

// Page implements store.BookStore.Page.
func (s *PostgresBookStore) Page(
	ctx context.Context,
	expr filter.Expression,
	offset, limit int,
) ([]domain.Book, int64, error) {
	where, args, err := compileWhere(expr, filter.BookFields)
	if err != nil {
		return nil, 0, err
	}

	return fetchPage(ctx, s.db, pageSpec{
		columns: bookColumns,
		from:    "books",
		where:   where,
		args:    args,
		orderBy: "id ASC",
	}, offset, limit, scanBook)
}

func scanBook(row rowScanner) (domain.Book, error) {
	var (
		b     domain.Book
		state int64
	)
	err := row.Scan(
		&b.ID, &b.Name, &b.ISBN, &b.Author, &b.Cover, &b.Summary,
		&b.ClassifyID, &b.CreateID, &state, &b.CreatedAt,
	)
	if err != nil {
		return domain.Book{}, err
	}
	b.State = domain.BookState(state)
	return b, nil
}
