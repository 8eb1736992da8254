package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockery --name Querier --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Querier.go

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx,
// so repositories work inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
