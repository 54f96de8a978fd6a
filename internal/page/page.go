// Package page turns a filter expression plus page parameters into a bounded,
// ordered result page. Storage does the scanning; this package owns the bounds.
package page

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
)

// Query parameter names accepted by every listing endpoint.
const (
	QueryParamPage     = "page"
	QueryParamPageSize = "pageSize"
)

// Limits bound page sizes.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// Request is a validated page request. Number is 1-based.
type Request struct {
	Number int
	Size   int
}

// Offset is the number of rows skipped before this page.
func (r Request) Offset() int { return (r.Number - 1) * r.Size }

// Result is one page of items plus the total match count.
type Result[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
}

// Source is the storage capability Paginate needs. Page returns the rows in
// [offset, offset+limit) of the matches ordered by primary key ascending, together
// with the total number of matches, both read from one consistent snapshot.
type Source[T any] interface {
	Page(ctx context.Context, expr filter.Expression, offset, limit int) ([]T, int64, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, expr filter.Expression, offset, limit int) ([]T, int64, error)

// Page implements Source.
func (f SourceFunc[T]) Page(ctx context.Context, expr filter.Expression, offset, limit int) ([]T, int64, error) {
	return f(ctx, expr, offset, limit)
}

// Clamp forces r into the limits: Number below 1 becomes 1, Size below 1 becomes
// the default size and Size above the maximum becomes the maximum.
func (l Limits) Clamp(r Request) Request {
	if r.Number < 1 {
		r.Number = 1
	}
	if r.Size < 1 {
		r.Size = l.DefaultSize
	}
	if l.MaxSize > 0 && r.Size > l.MaxSize {
		r.Size = l.MaxSize
	}
	return r
}

// ParseRequest reads page and pageSize from q. Missing values take defaults;
// non-integer values are validation errors; out-of-range values are clamped.
func ParseRequest(q url.Values, l Limits) (Request, error) {
	r := Request{Number: 1, Size: l.DefaultSize}

	if raw := strings.TrimSpace(q.Get(QueryParamPage)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Request{}, domain.NewValidationError(QueryParamPage, "must be an integer", domain.ErrValidation)
		}
		r.Number = n
	}
	if raw := strings.TrimSpace(q.Get(QueryParamPageSize)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Request{}, domain.NewValidationError(QueryParamPageSize, "must be an integer", domain.ErrValidation)
		}
		r.Size = n
	}

	return l.Clamp(r), nil
}

// Paginate clamps req, asks src for the page and shapes the Result.
// Items is never nil so an empty page serializes as [].
func Paginate[T any](
	ctx context.Context,
	src Source[T],
	expr filter.Expression,
	req Request,
	l Limits,
) (Result[T], error) {
	req = l.Clamp(req)

	items, total, err := src.Page(ctx, expr, req.Offset(), req.Size)
	if err != nil {
		return Result[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	if len(items) > req.Size {
		items = items[:req.Size]
	}

	return Result[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: req.Number,
		PageSize:   req.Size,
	}, nil
}
