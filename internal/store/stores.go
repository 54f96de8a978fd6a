package store

import (
	"context"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
)

// BookStore persists catalogue entries.
type BookStore interface {
	// Create saves a new book and sets its ID.
	// Returns ErrCategoryNotFound when the category does not exist.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Delete removes a book. Returns ErrBookNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// Page returns books matching expr ordered by id ascending, together with the
	// total match count. A nil expr matches every book.
	// Returns ErrInvalidFilter when expr does not fit the book field set.
	Page(ctx context.Context, expr filter.Expression, offset, limit int) ([]domain.Book, int64, error)
}

// UserStore persists registered readers.
type UserStore interface {
	// Create hashes user.Password, saves the user and sets its ID.
	// Returns ErrAccountExists if the account is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByAccount returns the user including HashedPassword.
	// Returns ErrUserNotFound if the account does not exist.
	GetByAccount(ctx context.Context, account string) (*domain.User, error)
}

// FeedbackStore persists feedback. Feedback is write-once.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
}

// CategoryStore reads the category catalogue.
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

// FavoriteStore persists favorites.
type FavoriteStore interface {
	// Create returns ErrFavoriteExists for a repeated favorite and
	// ErrBookNotFound when the book does not exist.
	Create(ctx context.Context, favorite *domain.Favorite) error

	// Delete returns ErrFavoriteNotFound if the user had not favorited the book.
	Delete(ctx context.Context, userID, bookID int64) error

	// PageBooks returns the books favorited by userID, ordered by favorite id.
	PageBooks(ctx context.Context, userID int64, offset, limit int) ([]domain.Book, int64, error)
}

// CommentStore persists comments.
type CommentStore interface {
	// Create returns ErrBookNotFound when the book does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// Delete returns ErrCommentNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// Page returns comments matching expr ordered by id ascending, with the total count.
	Page(ctx context.Context, expr filter.Expression, offset, limit int) ([]domain.Comment, int64, error)
}
