package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/zaishu/zaishu-api/internal/api/middleware"
	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/page"
)

// pathInt64 parses the named chi URL parameter. A non-integer value is a
// validation error, never a routing miss.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.Validation(shared.CodeInvalidParam, "invalid "+name)
	}
	return id, nil
}

// callerID returns the authenticated caller. Protected routes always have one;
// reaching a handler without it means the route was registered outside the gate.
func callerID(r *http.Request) (int64, error) {
	id, ok := middleware.GetCallerID(r)
	if !ok {
		return 0, shared.Auth(shared.CodeAuthMissing, "authorization required")
	}
	return id, nil
}

// paginate reads the page parameters from p and fetches one page from src.
func paginate[T any](
	ctx context.Context,
	p shared.Params,
	limits page.Limits,
	src page.Source[T],
	expr filter.Expression,
) (page.Result[T], error) {
	req, err := page.ParseRequest(p.Values(), limits)
	if err != nil {
		return page.Result[T]{}, err
	}
	return page.Paginate(ctx, src, expr, req, limits)
}

func success() map[string]bool {
	return map[string]bool{"success": true}
}
