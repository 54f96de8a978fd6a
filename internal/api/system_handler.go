package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/web"
)

// SystemHandler serves the static pages and the liveness endpoints.
type SystemHandler struct {
	pages *web.Renderer
}

// NewSystemHandler creates a SystemHandler rendering pages with pages.
func NewSystemHandler(pages *web.Renderer) *SystemHandler {
	return &SystemHandler{pages: pages}
}

// Hello echoes the request URI.
func (h *SystemHandler) Hello(r *http.Request) (any, error) {
	return map[string]string{
		"hello": "world",
		"uri":   r.URL.RequestURI(),
	}, nil
}

// Health answers a plain "OK" outside the envelope, for load balancers.
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Page returns a handler rendering the named page as HTML.
func (h *SystemHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.pages.Render(name)
		if err != nil {
			shared.RespondWithError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
