package page

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
)

var testLimits = Limits{DefaultSize: 10, MaxSize: 50}

// sliceSource pages over ids 1..n, ignoring the expression.
type sliceSource struct {
	n     int
	calls int
}

func (s *sliceSource) Page(_ context.Context, _ filter.Expression, offset, limit int) ([]int, int64, error) {
	s.calls++
	var out []int
	for id := offset + 1; id <= s.n && len(out) < limit; id++ {
		out = append(out, id)
	}
	return out, int64(s.n), nil
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		size      int
		wantItems []int
		wantPage  int
		wantSize  int
	}{
		{name: "first page", page: 1, size: 10, wantItems: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantPage: 1, wantSize: 10},
		{name: "last partial page", page: 3, size: 10, wantItems: []int{21, 22, 23, 24, 25}, wantPage: 3, wantSize: 10},
		{name: "past the end", page: 4, size: 10, wantItems: []int{}, wantPage: 4, wantSize: 10},
		{name: "non-positive page clamps to 1", page: 0, size: 5, wantItems: []int{1, 2, 3, 4, 5}, wantPage: 1, wantSize: 5},
		{name: "oversized page clamps to max", page: 1, size: 500, wantItems: seq(1, 25), wantPage: 1, wantSize: 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := &sliceSource{n: 25}

			res, err := Paginate[int](context.Background(), src, nil, Request{Number: tt.page, Size: tt.size}, testLimits)

			require.NoError(t, err)
			assert.Equal(t, tt.wantItems, res.Items)
			assert.Equal(t, int64(25), res.TotalCount)
			assert.Equal(t, tt.wantPage, res.PageNumber)
			assert.Equal(t, tt.wantSize, res.PageSize)
			assert.LessOrEqual(t, len(res.Items), res.PageSize)
			assert.Equal(t, 1, src.calls)
		})
	}
}

func TestPaginateDeterministic(t *testing.T) {
	t.Parallel()
	src := &sliceSource{n: 25}
	req := Request{Number: 2, Size: 10}

	first, err := Paginate[int](context.Background(), src, nil, req, testLimits)
	require.NoError(t, err)
	second, err := Paginate[int](context.Background(), src, nil, req, testLimits)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPaginateSourceError(t *testing.T) {
	t.Parallel()
	boom := errors.New("storage down")
	src := SourceFunc[int](func(context.Context, filter.Expression, int, int) ([]int, int64, error) {
		return nil, 0, boom
	})

	_, err := Paginate[int](context.Background(), src, nil, Request{Number: 1, Size: 10}, testLimits)
	assert.ErrorIs(t, err, boom)
}

func TestParseRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   url.Values
		want    Request
		wantErr bool
	}{
		{name: "defaults", query: url.Values{}, want: Request{Number: 1, Size: 10}},
		{name: "explicit", query: url.Values{"page": {"3"}, "pageSize": {"20"}}, want: Request{Number: 3, Size: 20}},
		{name: "negative page", query: url.Values{"page": {"-2"}}, want: Request{Number: 1, Size: 10}},
		{name: "zero size", query: url.Values{"pageSize": {"0"}}, want: Request{Number: 1, Size: 10}},
		{name: "huge size", query: url.Values{"pageSize": {"1000"}}, want: Request{Number: 1, Size: 50}},
		{name: "non-integer page", query: url.Values{"page": {"two"}}, wantErr: true},
		{name: "non-integer size", query: url.Values{"pageSize": {"1.5"}}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRequest(tt.query, testLimits)
			if tt.wantErr {
				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestOffset(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Request{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 20, Request{Number: 3, Size: 10}.Offset())
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
