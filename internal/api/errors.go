package api

import (
	"errors"
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/platform/isbn"
	"github.com/zaishu/zaishu-api/internal/service/auth"
	"github.com/zaishu/zaishu-api/internal/store"
)

// Handle adapts an API handler to net/http, mapping its errors through MapError.
func Handle(h shared.HandlerFunc) http.HandlerFunc {
	return shared.Handle(func(r *http.Request) (any, error) {
		data, err := h(r)
		if err != nil {
			return nil, MapError(err)
		}
		return data, nil
	})
}

// MapError maps internal errors to API errors with stable envelope codes.
// Errors that are already *shared.Error pass through unchanged; anything
// unrecognized becomes an internal error whose details are never sent.
func MapError(err error) *shared.Error {
	if err == nil {
		return nil
	}

	var apiErr *shared.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return shared.Validation(shared.CodeInvalidParam, verr.Error())

	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken):
		return shared.Auth(shared.CodeAuthMissing, "authorization required")
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.Auth(shared.CodeAuthExpired, "token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		return shared.Auth(shared.CodeAuthInvalid, "invalid token")

	// Not found errors
	case errors.Is(err, store.ErrBookNotFound):
		return shared.NotFound(shared.CodeNotFound, "book not found")
	case errors.Is(err, store.ErrUserNotFound):
		return shared.NotFound(shared.CodeNotFound, "user not found")
	case errors.Is(err, store.ErrCategoryNotFound):
		return shared.NotFound(shared.CodeNotFound, "category not found")
	case errors.Is(err, store.ErrFavoriteNotFound):
		return shared.NotFound(shared.CodeNotFound, "favorite not found")
	case errors.Is(err, store.ErrCommentNotFound):
		return shared.NotFound(shared.CodeNotFound, "comment not found")
	case errors.Is(err, store.ErrNotFound):
		return shared.NotFound(shared.CodeNotFound, "not found")

	// Conflict errors
	case errors.Is(err, store.ErrAccountExists):
		return shared.Conflict("account already exists")
	case errors.Is(err, store.ErrFavoriteExists):
		return shared.Conflict("book already in favorites")
	case errors.Is(err, store.ErrDuplicate):
		return shared.Conflict("already exists")

	// Bad request errors
	case errors.Is(err, store.ErrInvalidFilter):
		return shared.Validation(shared.CodeInvalidParam, "invalid filter")
	case errors.Is(err, store.ErrInvalidEntity):
		return shared.Validation(shared.CodeInvalidParam, "invalid entity data")
	case errors.Is(err, isbn.ErrEmptyISBN):
		return shared.Validation(shared.CodeInvalidParam, "miss isbn")

	// Collaborator failures
	case errors.Is(err, isbn.ErrUpstream):
		return shared.Upstream("isbn service unavailable", err)

	default:
		return shared.Internal(err)
	}
}
