package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zaishu/zaishu-api/internal/platform/isbn"
)

// ToolHandler serves the small utility endpoints.
type ToolHandler struct {
	isbn isbn.Lookuper
	now  func() time.Time
}

// NewToolHandler creates a ToolHandler that looks ISBNs up through lookup.
func NewToolHandler(lookup isbn.Lookuper) *ToolHandler {
	return &ToolHandler{isbn: lookup, now: time.Now}
}

// Time returns the server clock.
func (h *ToolHandler) Time(_ *http.Request) (any, error) {
	now := h.now()
	return map[string]any{
		"timestamp": now.Unix(),
		"time":      now.Format(time.RFC3339),
	}, nil
}

// ISBN passes the upstream metadata for the {isbn} path parameter through
// unchanged.
func (h *ToolHandler) ISBN(r *http.Request) (any, error) {
	info, err := h.isbn.Lookup(r.Context(), chi.URLParam(r, "isbn"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"info": info}, nil
}
