package mocks

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

// matches evaluates expr in memory against the field values get returns, with the
// same semantics the SQL compiler gives it (contains is case-insensitive).
func matches(expr filter.Expression, get func(field string) any) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *filter.Leaf:
		got := get(e.Field)
		switch e.Op {
		case filter.OpContains:
			s, _ := e.Value.(string)
			return strings.Contains(strings.ToLower(fmt.Sprint(got)), strings.ToLower(s))
		case filter.OpNotEquals:
			return !equal(got, e.Value)
		default:
			return equal(got, e.Value)
		}
	case *filter.Group:
		for _, c := range e.Children {
			m := matches(c, get)
			if e.Kind == filter.KindOr && m {
				return true
			}
			if e.Kind == filter.KindAnd && !m {
				return false
			}
		}
		return e.Kind == filter.KindAnd
	}
	return false
}

func equal(a, b any) bool {
	return normalize(a) == normalize(b)
}

func normalize(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.String:
		return rv.String()
	}
	return v
}

func bookField(b domain.Book) func(string) any {
	return func(field string) any {
		switch field {
		case domain.BookFieldID:
			return b.ID
		case domain.BookFieldName:
			return b.Name
		case domain.BookFieldISBN:
			return b.ISBN
		case domain.BookFieldAuthor:
			return b.Author
		case domain.BookFieldClassifyID:
			return b.ClassifyID
		case domain.BookFieldCreateID:
			return b.CreateID
		case domain.BookFieldState:
			return b.State
		}
		return nil
	}
}

func commentField(c domain.Comment) func(string) any {
	return func(field string) any {
		switch field {
		case domain.CommentFieldBookID:
			return c.BookID
		case domain.CommentFieldUserID:
			return c.UserID
		}
		return nil
	}
}

// validate mirrors the store contract: a bad expression is rejected before any read.
func validate(expr filter.Expression, fields filter.FieldSet) error {
	if err := filter.Validate(expr, fields); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidFilter, err)
	}
	return nil
}

// window cuts [offset, offset+limit) out of items.
func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
