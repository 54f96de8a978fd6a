package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zaishu/zaishu-api/internal/store"
)

// pageSpec describes one paginated SELECT. from and where are shared by the count
// and the row query; orderBy must be a unique key so pages never overlap.
type pageSpec struct {
	columns string
	from    string
	where   string
	args    []any
	orderBy string
}

func (p pageSpec) countSQL() string {
	return "SELECT COUNT(*) FROM " + p.from + p.where
}

func (p pageSpec) rowsSQL() string {
	n := len(p.args)
	return fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		p.columns, p.from, p.where, p.orderBy, n+1, n+2)
}

// fetchPage runs the count and the row query in one read-only snapshot so the
// total and the rows agree even under concurrent writes.
func fetchPage[T any](
	ctx context.Context,
	db *sql.DB,
	spec pageSpec,
	offset, limit int,
	scan func(rowScanner) (T, error),
) ([]T, int64, error) {
	var (
		total int64
		items []T
	)

	err := store.RunInReadTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, spec.countSQL(), spec.args...).Scan(&total); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		// Skip the row query when the page starts past the end.
		if int64(offset) >= total {
			return nil
		}

		args := append(append([]any{}, spec.args...), limit, offset)
		rows, err := tx.QueryContext(ctx, spec.rowsSQL(), args...)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, MapError(err)
	}

	return items, total, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
