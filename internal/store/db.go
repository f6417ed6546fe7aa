package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer. It is implemented by both
// *sql.DB and *sql.Tx, allowing store code to run against either the
// connection pool or an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Page carries offset/limit pagination parameters for listing operations.
// Listings are ordered by primary key ascending so repeated reads are
// deterministic.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage mirrors the API defaults: start at the beginning, return at
// most 100 rows.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: 100}
}
