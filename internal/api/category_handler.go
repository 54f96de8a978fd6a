package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/page"
	"github.com/zaishu/zaishu-api/internal/store"
)

// CategoryHandler serves categories and their books.
type CategoryHandler struct {
	categories store.CategoryStore
	books      store.BookStore
	limits     page.Limits
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories store.CategoryStore, books store.BookStore, limits page.Limits) *CategoryHandler {
	return &CategoryHandler{categories: categories, books: books, limits: limits}
}

// List returns every category.
func (h *CategoryHandler) List(r *http.Request) (any, error) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"categories": categories}, nil
}

// Books lists the approved books of the {id} category.
func (h *CategoryHandler) Books(r *http.Request) (any, error) {
	id, err := pathInt64(r, "id")
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}
	if _, err := h.categories.GetByID(r.Context(), id); err != nil {
		return nil, err
	}
	return paginate[domain.Book](r.Context(), p, h.limits, h.books,
		filter.BuildSearchFilter(nil, &id))
}
