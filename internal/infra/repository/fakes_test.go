//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// emptyRows is a result set with no rows, as returned by an UPDATE that matched nothing.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("UPDATE 0") }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// scalarRow scans a single value into the first destination.
type scalarRow[T any] struct {
	value T
	err   error
}

func (r scalarRow[T]) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*T)) = r.value
	return nil
}

type capturedSQL struct {
	statements []string
}

func (c *capturedSQL) rows(rows pgx.Rows, err error) func(context.Context, string, ...any) (pgx.Rows, error) {
	return func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
		c.statements = append(c.statements, sql)
		return rows, err
	}
}

func (c *capturedSQL) row(row pgx.Row) func(context.Context, string, ...any) pgx.Row {
	return func(_ context.Context, sql string, _ ...any) pgx.Row {
		c.statements = append(c.statements, sql)
		return row
	}
}
