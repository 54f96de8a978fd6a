package api

import (
	"context"
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/page"
	"github.com/zaishu/zaishu-api/internal/store"
)

const codeFavoriteMissingBookID = 1

// FavoriteHandler manages the caller's favorite books.
type FavoriteHandler struct {
	favorites store.FavoriteStore
	books     store.BookStore
	limits    page.Limits
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(favorites store.FavoriteStore, books store.BookStore, limits page.Limits) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, books: books, limits: limits}
}

// List pages through the caller's favorite books, oldest favorite first.
func (h *FavoriteHandler) List(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	src := page.SourceFunc[domain.Book](
		func(ctx context.Context, _ filter.Expression, offset, limit int) ([]domain.Book, int64, error) {
			return h.favorites.PageBooks(ctx, caller, offset, limit)
		})
	return paginate[domain.Book](r.Context(), p, h.limits, src, nil)
}

// Add favorites bookId for the caller. Books the caller cannot see do not exist.
func (h *FavoriteHandler) Add(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}
	bookID, ok := p.Int64("bookId")
	if !ok {
		return nil, shared.Validation(codeFavoriteMissingBookID, "miss bookId")
	}

	book, err := h.books.GetByID(r.Context(), bookID)
	if err != nil {
		return nil, err
	}
	if !book.VisibleTo(caller) {
		return nil, store.ErrBookNotFound
	}

	fav, err := domain.NewFavorite(caller, bookID)
	if err != nil {
		return nil, err
	}
	if err := h.favorites.Create(r.Context(), fav); err != nil {
		return nil, err
	}
	return map[string]any{"favorite": fav}, nil
}

// Remove drops the {bookId} favorite of the caller.
func (h *FavoriteHandler) Remove(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	bookID, err := pathInt64(r, "bookId")
	if err != nil {
		return nil, err
	}
	if err := h.favorites.Delete(r.Context(), caller, bookID); err != nil {
		return nil, err
	}
	return success(), nil
}
