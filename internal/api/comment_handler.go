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
	codeCommentMissingBookID  = 1
	codeCommentMissingContent = 2
)

// CommentHandler manages comments on books.
type CommentHandler struct {
	comments store.CommentStore
	books    store.BookStore
	limits   page.Limits
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(comments store.CommentStore, books store.BookStore, limits page.Limits) *CommentHandler {
	return &CommentHandler{comments: comments, books: books, limits: limits}
}

// List pages through the comments of bookId, oldest first.
func (h *CommentHandler) List(r *http.Request) (any, error) {
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
		return nil, shared.Validation(codeCommentMissingBookID, "miss bookId")
	}
	if err := h.visibleBook(r, bookID, caller); err != nil {
		return nil, err
	}

	return paginate[domain.Comment](r.Context(), p, h.limits, h.comments,
		filter.Equals(domain.CommentFieldBookID, bookID))
}

// Add comments on bookId as the caller.
func (h *CommentHandler) Add(r *http.Request) (any, error) {
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
		return nil, shared.Validation(codeCommentMissingBookID, "miss bookId")
	}
	content, ok := p.String("content")
	if !ok {
		return nil, shared.Validation(codeCommentMissingContent, "miss content")
	}
	if err := h.visibleBook(r, bookID, caller); err != nil {
		return nil, err
	}

	c, err := domain.NewComment(caller, bookID, content)
	if err != nil {
		return nil, err
	}
	if err := h.comments.Create(r.Context(), c); err != nil {
		return nil, err
	}
	return map[string]any{"comment": c}, nil
}

// Remove deletes the {id} comment. Only its author may do so.
func (h *CommentHandler) Remove(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	id, err := pathInt64(r, "id")
	if err != nil {
		return nil, err
	}

	c, err := h.comments.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if c.UserID != caller {
		return nil, shared.Forbidden("not the author of this comment")
	}
	if err := h.comments.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return success(), nil
}

// visibleBook reports store.ErrBookNotFound for books the caller cannot see.
func (h *CommentHandler) visibleBook(r *http.Request, bookID, caller int64) error {
	book, err := h.books.GetByID(r.Context(), bookID)
	if err != nil {
		return err
	}
	if !book.VisibleTo(caller) {
		return store.ErrBookNotFound
	}
	return nil
}
