package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepoExtension is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
// Repository methods take it as an optional first-class executor: callers pass
// a transaction to group writes, or nil to run on the repository's own pool.
type RepoExtension interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
