package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

func ptr[T any](v T) *T { return &v }

func TestCompileWhere(t *testing.T) {
	tests := []struct {
		name      string
		fields    filter.FieldSet
		expr      filter.Expression
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "nil expression",
			expr:      nil,
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "search key",
			expr:      filter.BuildSearchFilter(ptr("golang"), nil),
			wantWhere: ` WHERE (name ILIKE $1 ESCAPE '\' OR isbn ILIKE $2 ESCAPE '\')`,
			wantArgs:  []any{"%golang%", "%golang%"},
		},
		{
			name:      "category",
			expr:      filter.BuildSearchFilter(nil, ptr(int64(3))),
			wantWhere: " WHERE (classify_id = $1 AND state <> $2)",
			wantArgs:  []any{int64(3), int64(1)},
		},
		{
			name:      "owner viewing own books",
			expr:      filter.BuildOwnerFilter(5, 5),
			wantWhere: " WHERE create_id = $1",
			wantArgs:  []any{int64(5)},
		},
		{
			name:      "like metacharacters are escaped",
			expr:      filter.Contains(domain.BookFieldName, `50%_off\`),
			wantWhere: ` WHERE name ILIKE $1 ESCAPE '\'`,
			wantArgs:  []any{`%50\%\_off\\%`},
		},
		{
			name: "nested groups keep placeholder order",
			expr: filter.Or(
				filter.Equals(domain.BookFieldAuthor, "Lu Xun"),
				filter.And(filter.Equals(domain.BookFieldClassifyID, int64(2)), filter.NotEquals(domain.BookFieldState, domain.BookStateUnapproved)),
			),
			wantWhere: " WHERE (author = $1 OR (classify_id = $2 AND state <> $3))",
			wantArgs:  []any{"Lu Xun", int64(2), int64(1)},
		},
		{
			name:      "single child group needs no parentheses",
			fields:    filter.CommentFields,
			expr:      filter.And(filter.Equals(domain.CommentFieldBookID, 9)),
			wantWhere: " WHERE book_id = $1",
			wantArgs:  []any{int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.fields
			if fields == nil {
				fields = filter.BookFields
			}

			where, args, err := compileWhere(tt.expr, fields)

			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCompileWhere_RejectsInvalidExpressions(t *testing.T) {
	tests := []struct {
		name    string
		expr    filter.Expression
		wantErr error
	}{
		{name: "empty group", expr: filter.And(), wantErr: filter.ErrEmptyGroup},
		{name: "unknown field", expr: filter.Equals("password", "x"), wantErr: filter.ErrUnknownField},
		{name: "unknown operator", expr: &filter.Leaf{Field: domain.BookFieldName, Op: "startsWith", Value: "a"}, wantErr: filter.ErrUnknownOperator},
		{name: "comment field on books", expr: filter.Equals(domain.CommentFieldBookID, 1), wantErr: filter.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := compileWhere(tt.expr, filter.BookFields)

			assert.ErrorIs(t, err, store.ErrInvalidFilter)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, where)
			assert.Nil(t, args)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, int64(1), normalizeValue(domain.BookStateUnapproved))
	assert.Equal(t, int64(7), normalizeValue(7))
	assert.Equal(t, int64(7), normalizeValue(uint8(7)))
	assert.Equal(t, "abc", normalizeValue("abc"))
	assert.Equal(t, true, normalizeValue(true))
}
