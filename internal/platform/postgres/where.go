package postgres

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

// likeEscaper escapes LIKE metacharacters so a contains value matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereBuilder accumulates positional arguments while compiling an expression.
type whereBuilder struct {
	fields filter.FieldSet
	args   []any
}

// compileWhere turns expr into a " WHERE ..." clause with $n placeholders.
// A nil expression yields an empty clause. Invalid expressions are rejected with
// store.ErrInvalidFilter before any SQL is produced.
func compileWhere(expr filter.Expression, fields filter.FieldSet) (string, []any, error) {
	if err := filter.Validate(expr, fields); err != nil {
		return "", nil, fmt.Errorf("%w: %w", store.ErrInvalidFilter, err)
	}
	if expr == nil {
		return "", nil, nil
	}

	b := &whereBuilder{fields: fields}
	clause := b.build(expr)
	return " WHERE " + clause, b.args, nil
}

func (b *whereBuilder) build(expr filter.Expression) string {
	switch e := expr.(type) {
	case *filter.Leaf:
		return b.leaf(e)
	case *filter.Group:
		parts := make([]string, 0, len(e.Children))
		for _, c := range e.Children {
			parts = append(parts, b.build(c))
		}
		if len(parts) == 1 {
			return parts[0]
		}
		sep := " AND "
		if e.Kind == filter.KindOr {
			sep = " OR "
		}
		return "(" + strings.Join(parts, sep) + ")"
	}
	// Unreachable after filter.Validate.
	return "FALSE"
}

func (b *whereBuilder) leaf(l *filter.Leaf) string {
	col, _ := b.fields.Column(l.Field)
	switch l.Op {
	case filter.OpContains:
		s, _ := l.Value.(string)
		return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, col, b.bind("%"+likeEscaper.Replace(s)+"%"))
	case filter.OpNotEquals:
		return fmt.Sprintf("%s <> %s", col, b.bind(normalizeValue(l.Value)))
	default:
		return fmt.Sprintf("%s = %s", col, b.bind(normalizeValue(l.Value)))
	}
}

func (b *whereBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// normalizeValue converts named integer types such as domain.BookState to int64,
// which database/sql drivers accept without a custom Valuer.
func normalizeValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint())
	case reflect.String:
		return rv.String()
	default:
		return v
	}
}
