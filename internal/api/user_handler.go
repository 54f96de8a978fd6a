package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/store"
)

// UserHandler serves user profiles.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the caller's profile.
func (h *UserHandler) Me(r *http.Request) (any, error) {
	caller, err := callerID(r)
	if err != nil {
		return nil, err
	}
	return h.profile(r, caller)
}

// Get returns the {id} user's profile.
func (h *UserHandler) Get(r *http.Request) (any, error) {
	id, err := pathInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.profile(r, id)
}

func (h *UserHandler) profile(r *http.Request, id int64) (any, error) {
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"user": user}, nil
}
