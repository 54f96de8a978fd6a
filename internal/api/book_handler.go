package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/page"
	"github.com/zaishu/zaishu-api/internal/store"
)

const (
	codeBookInfoMissingID = 1
	codeBookInfoNotFound  = 2

	codeUserBooksNoUser    = 1
	codeUserBooksMissingID = 2
)

// BookHandler serves the book catalogue.
type BookHandler struct {
	books  store.BookStore
	users  store.UserStore
	limits page.Limits
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(books store.BookStore, users store.UserStore, limits page.Limits) *BookHandler {
	return &BookHandler{books: books, users: users, limits: limits}
}

// Search lists books matching searchKey (name or isbn) or, failing that, the
// approved books of categoryId. Without either it lists every book.
func (h *BookHandler) Search(r *http.Request) (any, error) {
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	var searchKey *string
	if key, ok := p.String("searchKey"); ok {
		searchKey = &key
	}
	var categoryID *int64
	if _, ok := p.String("categoryId"); ok {
		id, ok := p.Int64("categoryId")
		if !ok {
			return nil, shared.Validation(shared.CodeInvalidParam, "invalid categoryId")
		}
		categoryID = &id
	}

	return paginate[domain.Book](r.Context(), p, h.limits, h.books,
		filter.BuildSearchFilter(searchKey, categoryID))
}

// Info returns one book by bookId.
func (h *BookHandler) Info(r *http.Request) (any, error) {
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}
	id, ok := p.Int64("bookId")
	if !ok {
		return nil, shared.Validation(codeBookInfoMissingID, "miss bookId")
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, shared.NotFound(codeBookInfoNotFound, "not find book")
		}
		return nil, err
	}
	return map[string]any{"book": book}, nil
}

// ListByUser lists the books created by the {id} user as seen by the pid
// caller. pid is taken from the request as given and is not authenticated.
func (h *BookHandler) ListByUser(r *http.Request) (any, error) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	if _, err := h.users.GetByID(r.Context(), userID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, shared.NotFound(codeUserBooksNoUser, "user not found")
		}
		return nil, err
	}
	pid, ok := p.Int64("pid")
	if !ok {
		return nil, shared.Validation(codeUserBooksMissingID, "pid miss")
	}

	return paginate[domain.Book](r.Context(), p, h.limits, h.books,
		filter.BuildOwnerFilter(userID, pid))
}

// Mine lists the caller's own books in every state.
func (h *BookHandler) Mine(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}
	return paginate[domain.Book](r.Context(), p, h.limits, h.books,
		filter.BuildOwnerFilter(caller, caller))
}

// Create submits a book for review. It starts unapproved and owned by the caller.
func (h *BookHandler) Create(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	var req bookRequest
	req.Name, _ = p.String("name")
	req.ISBN, _ = p.String("isbn")
	req.Author, _ = p.String("author")
	req.Cover, _ = p.String("cover")
	req.Summary, _ = p.String("summary")
	req.ClassifyID, _ = p.Int64("classifyId")

	if err := shared.ValidateRequest(&req); err != nil {
		if field := shared.FirstInvalidField(err); field != "" {
			return nil, shared.Validation(shared.CodeInvalidParam, "invalid "+field)
		}
		return nil, err
	}

	book, err := domain.NewBook(caller, req.ClassifyID, req.Name, req.ISBN, req.Author)
	if err != nil {
		return nil, err
	}
	book.Cover = req.Cover
	book.Summary = req.Summary

	if err := h.books.Create(r.Context(), book); err != nil {
		return nil, err
	}
	return map[string]any{"book": book}, nil
}

// Delete removes one of the caller's books.
func (h *BookHandler) Delete(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		return nil, err
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if book.CreateID != caller {
		return nil, shared.Forbidden("not the owner of this book")
	}
	if err := h.books.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return success(), nil
}
